package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/obx0x3/empathy-dementia/pkg/intent"
	"github.com/obx0x3/empathy-dementia/pkg/langdetect"
	"github.com/obx0x3/empathy-dementia/pkg/reply"
)

type GenerateRequest struct {
	Message string  `json:"message"`
	Lang    *string `json:"lang,omitempty"`
}

type AnalyzeRequest struct {
	Message string `json:"message"`
}

type AnalyzeResponse struct {
	intent.Result
	Language langdetect.Language `json:"language"`
}

func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	logger := s.loggerFrom(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.replier.Respond(r.Context(), reply.Request{
		Message:  req.Message,
		Language: req.Lang,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, reply.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, reply.ErrGenerationFailed):
		logger.Error("Reply generation failed", "error", err)
		writeError(w, http.StatusBadGateway, "reply generation failed")
	default:
		logger.Error("Unexpected reply error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.loggerFrom(r.Context()).Warn("Failed to decode request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Result:   intent.Detect(req.Message),
		Language: langdetect.Detect(req.Message),
	})
}
