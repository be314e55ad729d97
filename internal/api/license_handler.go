package api

import (
	"net/http"

	"omnichat/client/internal/interfaces"
	"omnichat/client/internal/model"
)

// LicenseHandler serves the trial and activation endpoints.
type LicenseHandler struct {
	service interfaces.LicenseService
}

func NewLicenseHandler(svc interfaces.LicenseService) *LicenseHandler {
	return &LicenseHandler{service: svc}
}

func (h *LicenseHandler) response(state model.LicenseState) LicenseResponse {
	return LicenseResponse{
		LicenseState:       state,
		GraceDaysRemaining: h.service.GraceDaysRemaining(),
		RequiresActivation: h.service.RequiresActivation(),
	}
}

// GetLicense godoc
// @Summary      Get trial and activation state
// @Tags         License
// @Produce      json
// @Success      200  {object}  LicenseResponse
// @Router       /v1/license [get]
func (h *LicenseHandler) GetLicense(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.response(h.service.State()))
}

// ActivateLicense godoc
// @Summary      Activate a license key
// @Description  A rejected key or an unreachable license server is reported in the state's message; the status is returned either way.
// @Tags         License
// @Accept       json
// @Produce      json
// @Param        request  body      ActivateLicenseRequest  true  "License key"
// @Success      200      {object}  LicenseResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/license/activate [post]
func (h *LicenseHandler) ActivateLicense(w http.ResponseWriter, r *http.Request) {
	var req ActivateLicenseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	state, err := h.service.Activate(r.Context(), req.LicenseKey)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.response(state))
}

// DeactivateLicense godoc
// @Summary      Release this installation's activation
// @Tags         License
// @Produce      json
// @Success      200  {object}  LicenseResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/license/deactivate [post]
func (h *LicenseHandler) DeactivateLicense(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Deactivate(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.response(state))
}
