package handler

import (
	"net/http"

	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/service"
)

// CompatibilityHandler handles compatibility scoring endpoints
type CompatibilityHandler struct {
	compatibilityService *service.CompatibilityService
}

// NewCompatibilityHandler creates a new compatibility handler
func NewCompatibilityHandler(compatibilityService *service.CompatibilityService) *CompatibilityHandler {
	return &CompatibilityHandler{
		compatibilityService: compatibilityService,
	}
}

// Compare handles GET /v1/compatibility/{profileA}/{profileB} - score two profiles
func (h *CompatibilityHandler) Compare(w http.ResponseWriter, r *http.Request) {
	idA := r.PathValue("profileA")
	idB := r.PathValue("profileB")
	if idA == "" || idB == "" {
		WriteError(w, model.NewBadRequestError("two profile IDs required"))
		return
	}

	result, err := h.compatibilityService.Compare(r.Context(), idA, idB)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "compare profiles"))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"self":     "/v1/compatibility/" + idA + "/" + idB,
		"profileA": "/v1/profiles/" + idA,
		"profileB": "/v1/profiles/" + idB,
	})
}
