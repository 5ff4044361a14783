package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"telegram-otp-relay/internal/domain/ports/repository"
	"telegram-otp-relay/internal/usecase"
)

// Server is the ops surface of the relay: health probes, Prometheus metrics
// and a small JWT-guarded stats API. It never touches Telegram.
type Server struct {
	statusUC      usecase.StatusUseCase
	seen          repository.SeenRepository
	auth          *AuthManager
	adminPassword string
	log           *zerolog.Logger
}

func NewServer(
	statusUC usecase.StatusUseCase,
	seen repository.SeenRepository,
	auth *AuthManager,
	adminPassword string,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		statusUC:      statusUC,
		seen:          seen,
		auth:          auth,
		adminPassword: adminPassword,
		log:           logger,
	}
}

// Router assembles the ops routes. Probes and metrics are open; everything
// under /api/v1 except login requires a minted token.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(TraceID(), Recover(s.log), RequestLog(s.log), Timeout(10*time.Second))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/api/v1/login", s.handleLogin)
	r.Group(func(pr chi.Router) {
		pr.Use(s.requireAdmin)
		pr.Get("/api/v1/stats", s.handleStats)
		pr.Post("/api/v1/logout", s.handleLogout)
	})
	return r
}

// requireAdmin provides JWT bearer/cookie authentication for the stats API.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.auth.ParseFromRequest(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.Role != "admin" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
