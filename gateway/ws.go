package gateway

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// upgrader accepts any origin: the gateway binds to localhost and holds
// no credentials beyond the session ID already present in the URL.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsError is the error frame sent for a rejected command. The
// connection stays open; one bad widget event should not drop the UI.
type wsError struct {
	Error string `json:"error"`
}

// handleEvents streams the session's event loop over a websocket: the
// client sends command envelopes, the server answers each with a
// render. Frames are handled strictly in order, matching the one
// action at a time interaction model.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[GATEWAY] Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[GATEWAY] Event stream opened for session %s", sess.ID)

	sessionID := sess.ID
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[GATEWAY] Event stream error for session %s: %v", sessionID, err)
			}
			return
		}

		// Re-resolve per frame so a long-lived connection tracks
		// registry expiry and refreshes the TTL like an HTTP request.
		sess, ok = s.sessions.Get(sessionID)
		if !ok {
			writeFrame(conn, wsError{Error: fmt.Sprintf("unknown session: %s", sessionID)})
			return
		}

		cmd, err := decodeCommand(data)
		if err != nil {
			if werr := writeFrame(conn, wsError{Error: err.Error()}); werr != nil {
				return
			}
			continue
		}

		render, err := s.engine.Dispatch(r.Context(), sess, cmd)
		if err != nil {
			if werr := writeFrame(conn, wsError{Error: err.Error()}); werr != nil {
				return
			}
			continue
		}

		if err := writeFrame(conn, render); err != nil {
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
