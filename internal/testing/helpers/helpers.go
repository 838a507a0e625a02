package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/duetmatch/duet/api/internal/database"
	"github.com/duetmatch/duet/api/internal/handler"
	"github.com/duetmatch/duet/api/internal/middleware"
	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/repository"
	"github.com/duetmatch/duet/api/internal/service"
)

// ============================================================================
// Application Harness
// ============================================================================

// TestApp wires the full HTTP stack over an in-memory store.
type TestApp struct {
	Handler http.Handler
	Store   *database.MemoryStore
	Repo    *repository.ProfileRepository
}

// NewTestApp builds an isolated application instance for acceptance tests.
// Routes and middleware mirror the production server, minus rate limiting
// so tests stay deterministic.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	store := database.NewMemoryStore()
	if err := store.Connect(context.Background()); err != nil {
		t.Fatalf("helpers: failed to connect memory store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	profileRepo := repository.NewProfileRepository(store)

	questionnaireService := service.NewQuestionnaireService()
	profileService := service.NewProfileService(service.ProfileServiceConfig{
		ProfileRepo: profileRepo,
	})
	compatibilityService := service.NewCompatibilityService(service.CompatibilityServiceConfig{
		ProfileRepo: profileRepo,
	})

	healthHandler := handler.NewHealthHandler(store)
	questionnaireHandler := handler.NewQuestionnaireHandler(questionnaireService)
	profileHandler := handler.NewProfileHandler(profileService)
	compatibilityHandler := handler.NewCompatibilityHandler(compatibilityService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler.Check)
	mux.HandleFunc("GET /v1/questions", questionnaireHandler.ListQuestions)
	mux.HandleFunc("GET /v1/questions/categories", questionnaireHandler.GetCategories)
	mux.HandleFunc("GET /v1/questions/{questionId}", questionnaireHandler.GetQuestion)
	mux.HandleFunc("POST /v1/profiles", profileHandler.Create)
	mux.HandleFunc("GET /v1/profiles", profileHandler.List)
	mux.HandleFunc("GET /v1/profiles/{profileId}", profileHandler.Get)
	mux.HandleFunc("PUT /v1/profiles/{profileId}/answers", profileHandler.UpdateAnswers)
	mux.HandleFunc("DELETE /v1/profiles/{profileId}", profileHandler.Delete)
	mux.HandleFunc("GET /v1/compatibility/{profileA}/{profileB}", compatibilityHandler.Compare)

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Recovery,
	)

	return &TestApp{
		Handler: wrapped,
		Store:   store,
		Repo:    profileRepo,
	}
}

// Do executes a request against the app and records the response
func (a *TestApp) Do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, req)
	return rr
}

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct HTTP requests for testing
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body interface{}) *RequestBuilder {
	rb.body = body
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build() *http.Request {
	rb.t.Helper()

	var bodyReader io.Reader
	if rb.body != nil {
		bodyBytes, err := json.Marshal(rb.body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(rb.method, rb.path, bodyReader)

	if rb.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}

	return req
}

// ============================================================================
// Response Assertion Helpers
// ============================================================================

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, resp.Code, resp.Body.String())
	}
}

// AssertProblemDetails validates an RFC 9457 Problem Details error response
func AssertProblemDetails(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int, expectedCode model.ErrorCode) {
	t.Helper()

	AssertStatus(t, resp, expectedStatus)

	var problem model.ProblemDetails
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &problem); err != nil {
		t.Fatalf("failed to decode problem details: %v. Body: %s", err, string(bodyBytes))
	}

	if problem.Status != expectedStatus {
		t.Errorf("expected problem.status %d, got %d", expectedStatus, problem.Status)
	}

	if expectedCode != 0 && problem.Code != expectedCode {
		t.Errorf("expected problem.code %d, got %d", expectedCode, problem.Code)
	}
}

// AssertValidationError checks for a validation error on a specific field
func AssertValidationError(t *testing.T, resp *httptest.ResponseRecorder, field string) {
	t.Helper()

	AssertStatus(t, resp, http.StatusUnprocessableEntity)

	var problem model.ProblemDetails
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &problem); err != nil {
		t.Fatalf("failed to decode problem details: %v", err)
	}

	for _, fe := range problem.Errors {
		if fe.Field == field {
			return // Found the expected field error
		}
	}

	t.Errorf("expected validation error on field %q, but not found. Errors: %+v", field, problem.Errors)
}

// DecodeResponse decodes the response body into the given struct
func DecodeResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, v); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(bodyBytes))
	}
}

// GetDataFromResponse extracts the "data" field from a standard response
func GetDataFromResponse(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response struct {
		Data map[string]interface{} `json:"data"`
	}
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(bodyBytes))
	}

	return response.Data
}

// GetCollectionFromResponse extracts the "data" array from a collection response
func GetCollectionFromResponse(t *testing.T, resp *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var response struct {
		Data []map[string]interface{} `json:"data"`
	}
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(bodyBytes))
	}

	return response.Data
}

// AssertJSONContains checks that the response body contains expected key-value pairs
func AssertJSONContains(t *testing.T, resp *httptest.ResponseRecorder, expected map[string]interface{}) {
	t.Helper()

	var actual map[string]interface{}
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &actual); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(bodyBytes))
	}

	for key, expectedVal := range expected {
		actualVal, ok := actual[key]
		if !ok {
			t.Errorf("expected key %q not found in response", key)
			continue
		}

		if !jsonEqual(expectedVal, actualVal) {
			t.Errorf("for key %q: expected %v, got %v", key, expectedVal, actualVal)
		}
	}
}

// jsonEqual compares values through a JSON round trip to normalize types
func jsonEqual(a, b interface{}) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	var av, bv interface{}
	if err := json.Unmarshal(ab, &av); err != nil {
		return false
	}
	if err := json.Unmarshal(bb, &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}
