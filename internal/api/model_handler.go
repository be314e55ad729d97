package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"omnichat/client/internal/interfaces"
)

// ModelHandler serves the provider catalog and the per-provider API keys.
type ModelHandler struct {
	service interfaces.SettingsService
}

func NewModelHandler(svc interfaces.SettingsService) *ModelHandler {
	return &ModelHandler{service: svc}
}

// HandleListProviders godoc
// @Summary      List providers
// @Description  Lists every provider with its models and whether an API key is configured.
// @Tags         Providers
// @Produce      json
// @Success      200  {array}   service.ProviderInfo
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/providers [get]
func (h *ModelHandler) HandleListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.Providers(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, providers)
}

// HandleSetAPIKey godoc
// @Summary      Store a provider API key
// @Tags         Providers
// @Accept       json
// @Produce      json
// @Param        provider  path      string            true  "Provider name"
// @Param        request   body      SetAPIKeyRequest  true  "API key"
// @Success      200       {object}  StatusResponse
// @Failure      400       {object}  ErrorResponse
// @Router       /v1/settings/api-keys/{provider} [put]
func (h *ModelHandler) HandleSetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req SetAPIKeyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.SetAPIKey(r.Context(), chi.URLParam(r, "provider"), req.APIKey); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleDeleteAPIKey godoc
// @Summary      Remove a provider API key
// @Tags         Providers
// @Param        provider  path  string  true  "Provider name"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/settings/api-keys/{provider} [delete]
func (h *ModelHandler) HandleDeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAPIKey(r.Context(), chi.URLParam(r, "provider")); err != nil {
		respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
