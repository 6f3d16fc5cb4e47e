package server

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the HTTP surface: the websocket endpoint, a small JSON API,
// and the frontend build with SPA fallback.
func Routes(s *Session, webDist string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ws", s.ServeWS)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)
		r.Get("/state", s.handleState)
		r.Get("/logs.csv", s.handleLogsCSV)
	})
	r.NotFound(spaHandler(webDist))
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Session) handleState(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Snapshot()); err != nil {
		log.Printf("state encode: %v", err)
	}
}

func (s *Session) handleLogsCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="game_logs.csv"`)
	if err := s.svc.Log().WriteCSV(w); err != nil {
		log.Printf("csv export: %v", err)
	}
}

// spaHandler serves files from the frontend build, falling back to
// index.html for client-side routes.
func spaHandler(webDist string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(webDist, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(webDist, "index.html"))
	}
}
