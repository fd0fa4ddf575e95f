package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/candidates", a.ListCandidatesHandler)
		r.Post("/candidates", a.CreateCandidateHandler)
		r.Post("/candidates/refresh", a.RefreshCandidatesHandler)
		r.Delete("/candidates/cache", a.ClearCacheHandler)

		r.Post("/import/preview", a.ImportPreviewHandler)
		r.Post("/import/commit", a.ImportCommitHandler)
		r.Get("/import/template", a.ImportTemplateHandler)

		r.Get("/board", a.GetBoardHandler)
		r.Delete("/board", a.ClearBoardHandler)
		r.Post("/board/move", a.MoveCandidateHandler)
		r.Post("/board/reset", a.ResetBoardHandler)

		r.Get("/reports/summary", a.ReportSummaryHandler)
	})

	return r
}
