package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/egolabs/ego/engine"
	"github.com/egolabs/ego/session"
)

// sessionInfo is the create-session response body.
type sessionInfo struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// errorBody is the uniform error response body.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	log.Printf("[GATEWAY] Created session %s", sess.ID)
	writeJSON(w, http.StatusCreated, sessionInfo{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
	})
}

func (s *Server) handleRenderPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	page, err := engine.ParsePage(r.PathValue("page"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	render, err := s.engine.Dispatch(r.Context(), sess, engine.Navigate{Page: page})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, render)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<16))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return
	}

	cmd, err := decodeCommand(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	render, err := s.engine.Dispatch(r.Context(), sess, cmd)
	if err != nil {
		// Dispatch errors are validation failures: the command named a
		// value its widget could never produce.
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, render)
}

// session resolves the request's session or answers 404.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	sess, ok := s.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown session: %s", id))
		return nil, false
	}
	return sess, true
}

// decodeCommand maps a JSON envelope {"type": ..., ...} to a command.
func decodeCommand(data []byte) (engine.Command, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode command envelope: %w", err)
	}

	switch envelope.Type {
	case "navigate":
		var c struct {
			Page string `json:"page"`
		}
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode navigate: %w", err)
		}
		page, err := engine.ParsePage(c.Page)
		if err != nil {
			return nil, err
		}
		return engine.Navigate{Page: page}, nil

	case "submit_big_five":
		var c engine.SubmitBigFive
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode submit_big_five: %w", err)
		}
		return c, nil

	case "submit_mbti":
		var c engine.SubmitMBTI
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode submit_mbti: %w", err)
		}
		return c, nil

	case "select_enneagram_type":
		var c engine.SelectEnneagramType
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode select_enneagram_type: %w", err)
		}
		return c, nil

	case "submit_enneagram":
		var c engine.SubmitEnneagram
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode submit_enneagram: %w", err)
		}
		return c, nil

	case "ask":
		var c engine.Ask
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode ask: %w", err)
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unknown command type: %q", envelope.Type)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[GATEWAY] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}
