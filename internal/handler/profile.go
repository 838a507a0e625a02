package handler

import (
	"net/http"

	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/service"
)

// ProfileHandler handles personality profile endpoints
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Create handles POST /v1/profiles - create a profile from questionnaire answers
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid JSON body"))
		return
	}

	profile, err := h.profileService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create profile"))
		return
	}

	WriteData(w, http.StatusCreated, profile, map[string]string{
		"self": "/v1/profiles/" + profile.ID,
	})
}

// List handles GET /v1/profiles - list profiles, optionally filtered by gender
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	gender := r.URL.Query().Get("gender")

	var profiles []*model.PersonalityProfile
	var err error

	if gender != "" {
		profiles, err = h.profileService.ListByGender(r.Context(), gender)
	} else {
		profiles, err = h.profileService.List(r.Context())
	}

	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list profiles"))
		return
	}

	WriteCollection(w, http.StatusOK, profiles, len(profiles), map[string]string{
		"self": "/v1/profiles",
	})
}

// Get handles GET /v1/profiles/{profileId} - get a profile by ID
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("profileId")
	if profileID == "" {
		WriteError(w, model.NewBadRequestError("profile ID required"))
		return
	}

	profile, err := h.profileService.Get(r.Context(), profileID)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get profile"))
		return
	}

	WriteData(w, http.StatusOK, profile, map[string]string{
		"self": "/v1/profiles/" + profileID,
	})
}

// UpdateAnswers handles PUT /v1/profiles/{profileId}/answers - replace answers
// and recompute the derived trait scores and type classification.
func (h *ProfileHandler) UpdateAnswers(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("profileId")
	if profileID == "" {
		WriteError(w, model.NewBadRequestError("profile ID required"))
		return
	}

	var req model.UpdateAnswersRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid JSON body"))
		return
	}

	profile, err := h.profileService.UpdateAnswers(r.Context(), profileID, &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update answers"))
		return
	}

	WriteData(w, http.StatusOK, profile, map[string]string{
		"self": "/v1/profiles/" + profileID,
	})
}

// Delete handles DELETE /v1/profiles/{profileId} - remove a profile
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID := r.PathValue("profileId")
	if profileID == "" {
		WriteError(w, model.NewBadRequestError("profile ID required"))
		return
	}

	if err := h.profileService.Delete(r.Context(), profileID); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete profile"))
		return
	}

	WriteNoContent(w)
}
