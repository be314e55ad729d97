package api

import (
	"net/http"
	"time"

	// Registers the generated API definitions with swaggo.
	_ "omnichat/client/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter builds the local control API the UI shell talks to.
func NewRouter(chatHandler *ChatHandler, modelHandler *ModelHandler, licenseHandler *LicenseHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Provider calls made on behalf of these routes can take a while;
		// the timeout only bounds a hung backend.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(5 * time.Minute))

			// --- State ---
			r.Get("/state", chatHandler.GetState)
			r.Delete("/state/error", chatHandler.DismissError)
			r.Get("/turns", chatHandler.GetTurns)

			// --- Conversations ---
			r.Get("/conversations", chatHandler.GetConversations)
			r.Post("/conversations", chatHandler.CreateConversation)
			r.Get("/conversations/search", chatHandler.SearchConversations)
			r.Route("/conversations/{conversationID}", func(r chi.Router) {
				r.Delete("/", chatHandler.DeleteConversation)
				r.Post("/select", chatHandler.SelectConversation)
				r.Post("/clone", chatHandler.CloneConversation)
				r.Post("/export", chatHandler.ExportConversation)
				r.Put("/title", chatHandler.UpdateTitle)
				r.Put("/pinned", chatHandler.UpdatePinned)
				r.Put("/tags", chatHandler.UpdateTags)
				r.Put("/folder", chatHandler.UpdateFolder)
			})

			// --- Messages ---
			r.Post("/messages", chatHandler.SendMessage)
			r.Post("/messages/stop", chatHandler.StopMessage)
			r.Post("/messages/regenerate", chatHandler.RegenerateMessage)
			r.Post("/messages/compare", chatHandler.CompareMessage)
			r.Put("/messages/last-user", chatHandler.EditLastUserMessage)

			// --- Knowledge and audio ---
			r.Put("/buckets/selection", chatHandler.SelectBuckets)
			r.Post("/transcriptions", chatHandler.Transcribe)

			// --- License ---
			r.Get("/license", licenseHandler.GetLicense)
			r.Post("/license/activate", licenseHandler.ActivateLicense)
			r.Post("/license/deactivate", licenseHandler.DeactivateLicense)

			// --- Providers ---
			r.Get("/providers", modelHandler.HandleListProviders)
			r.Put("/settings/api-keys/{provider}", modelHandler.HandleSetAPIKey)
			r.Delete("/settings/api-keys/{provider}", modelHandler.HandleDeleteAPIKey)
		})

		// Long-lived streams must not have a timeout.
		r.Group(func(r chi.Router) {
			r.Get("/state/stream", chatHandler.HandleStateStream)
		})
	})

	return r
}
