// FilePath: api/resources/api.resource.auth.go
package resources

import (
	"net/http"

	"github.com/AlexDanDobrin/Plantech/internal/errors"
	"github.com/AlexDanDobrin/Plantech/internal/plantservice"
	nuts "github.com/vaudience/go-nuts"
)

// AuthHandlers encapsulates the credential-related HTTP handlers
type AuthHandlers struct {
	plantservice *plantservice.PlantService
}

type credentialsRequest struct {
	Username string `schema:"username,required"`
	Password string `schema:"password,required"`
}

// @Summary Register a new user
// @Description Create a user account; the password is stored as a salted one-way hash
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username (max 30 chars)"
// @Param password formData string true "Password"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Router /register [post]
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req credentialsRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.plantservice.Register(r.Context(), req.Username, req.Password); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithMessage(w, http.StatusCreated, "New user successfully created!")
}

// @Summary Log in
// @Description Verify a username/password pair; no session or token is issued
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.APIError
// @Router /login [post]
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req credentialsRequest
	if err := decodeForm(r, &req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.plantservice.Login(r.Context(), req.Username, req.Password); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithMessage(w, http.StatusOK, "Successfully logged in!")
}
