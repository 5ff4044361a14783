package web

import (
	"encoding/json"
	"net/http"
	"time"
)

type loginRequest struct {
	Password string `json:"password"`
}

// handleLogin trades the admin password for a short-lived session token.
// The token is returned in the body and also set as an HttpOnly cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.adminPassword == "" {
		s.log.Error().Msg("ops admin password is not configured")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Password != s.adminPassword {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := s.auth.Mint(w)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to mint session token")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(struct {
		Token string `json:"token"`
	}{Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleStats serves the live relay snapshot as JSON.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rep := s.statusUC.Report(ctx)

	response := struct {
		UptimeSeconds  int64  `json:"uptime_seconds"`
		PatternsLoaded int    `json:"patterns_loaded"`
		SeenThisRun    int    `json:"seen_this_run"`
		Detected       int64  `json:"otp_detected"`
		Forwarded      int64  `json:"forwarded"`
		Deduped        int64  `json:"deduped"`
		RemoteTotal    *int   `json:"remote_total"`
		LastTickAt     string `json:"last_tick_at,omitempty"`
		LastTickNote   string `json:"last_tick_note,omitempty"`
	}{
		UptimeSeconds:  int64(rep.Uptime.Seconds()),
		PatternsLoaded: rep.PatternsLoaded,
		SeenThisRun:    rep.SeenThisRun,
		Detected:       rep.Detected,
		Forwarded:      rep.Forwarded,
		Deduped:        rep.Deduped,
		LastTickNote:   rep.LastTickNote,
	}
	if rep.RemoteTotalKnown {
		total := rep.RemoteTotal
		response.RemoteTotal = &total
	}
	if !rep.LastTickAt.IsZero() {
		response.LastTickAt = rep.LastTickAt.UTC().Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReadyz reports ready once the seen store answers; with the memory
// backend that is immediate, with redis or bolt it proves the store is up.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if _, err := s.seen.Len(r.Context()); err != nil {
		http.Error(w, "seen store unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
