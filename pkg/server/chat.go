package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/obx0x3/empathy-dementia/pkg/reply"
)

// ChatError is sent in place of a reply when one message fails. The
// connection stays open for the next message.
type ChatError struct {
	Error string `json:"error"`
}

// chatHandler answers each GenerateRequest frame with a reply.Response or a
// ChatError frame until the client disconnects.
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.loggerFrom(r.Context())

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to websocket", "error", err)
		return
	}
	defer func() { _ = ws.Close() }()

	for {
		_, frame, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Chat connection closed", "error", err)
			}
			return
		}

		var req GenerateRequest
		if err := json.Unmarshal(frame, &req); err != nil {
			logger.Warn("Failed to decode chat frame", "error", err)
			if err := ws.WriteJSON(ChatError{Error: "invalid request body"}); err != nil {
				logger.Warn("Failed to write chat frame", "error", err)
				return
			}
			continue
		}

		resp, err := s.replier.Respond(r.Context(), reply.Request{
			Message:  req.Message,
			Language: req.Lang,
		})
		if err != nil {
			if !errors.Is(err, reply.ErrInvalidArgument) {
				logger.Error("Chat reply failed", "error", err)
			}
			err = ws.WriteJSON(ChatError{Error: chatErrorMessage(err)})
		} else {
			err = ws.WriteJSON(resp)
		}
		if err != nil {
			logger.Warn("Failed to write chat frame", "error", err)
			return
		}
	}
}

func chatErrorMessage(err error) string {
	switch {
	case errors.Is(err, reply.ErrInvalidArgument):
		return err.Error()
	case errors.Is(err, reply.ErrGenerationFailed):
		return "reply generation failed"
	default:
		return "internal error"
	}
}
