package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/section308/heartboard/pkg/types"
)

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, boardResponse{
		Capacity:     s.store.Capacity(),
		Lit:          s.store.LitCount(),
		Remaining:    s.store.Remaining(),
		Mask:         types.HeartMask,
		Participants: s.store.Snapshot(),
	})
}

type joinRequest struct {
	Name string `json:"name"`
}

type joinResponse struct {
	Participant types.Participant `json:"participant"`
	Message     string            `json:"message"`
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, changed, err := s.store.Join(req.Name)
	switch {
	case errors.Is(err, types.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "name must not be empty")
		return
	case errors.Is(err, types.ErrCapacityFull):
		writeError(w, http.StatusConflict, "the board is full")
		return
	case err != nil:
		s.log.Error().Err(err).Msg("join failed")
		writeError(w, http.StatusInternalServerError, "could not record the submission")
		return
	}

	if changed {
		go s.webhook.Notify(context.Background(), rec)
	}
	// A duplicate submission of a claimed name re-shows the same
	// thank-you flow.
	writeJSON(w, http.StatusOK, joinResponse{
		Participant: rec,
		Message:     types.ThankYouMessage(),
	})
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("lit")
	rec, changed, err := s.store.Activate(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing lit parameter")
		return
	}

	if changed {
		go s.webhook.Notify(context.Background(), rec)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"participant": rec,
		"changed":     changed,
	})
}

type toggleRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := s.store.Toggle(req.ID)
	if errors.Is(err, types.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such participant")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("toggle failed")
		writeError(w, http.StatusInternalServerError, "could not toggle the record")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if s.scheduler == nil {
		writeError(w, http.StatusServiceUnavailable, "no source address configured")
		return
	}

	changed, err := s.scheduler.SyncOnce(r.Context())
	if err != nil {
		s.log.Warn().Err(err).Msg("manual sync failed")
		writeError(w, http.StatusBadGateway, "sync failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"changed": changed,
		"lit":     s.store.LitCount(),
		"records": s.store.Len(),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(); err != nil {
		s.log.Error().Err(err).Msg("reset failed")
		writeError(w, http.StatusInternalServerError, "could not reset the board")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records": s.store.Len(),
		"lit":     s.store.LitCount(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
