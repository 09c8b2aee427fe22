package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/obx0x3/empathy-dementia/pkg/logging"
	"github.com/obx0x3/empathy-dementia/pkg/reply"
)

const RequestIDHeader = "X-Request-ID"

type Replier interface {
	Respond(ctx context.Context, req reply.Request) (reply.Response, error)
}

type Server struct {
	replier  Replier
	factory  *logging.Factory
	logger   *log.Logger
	mode     string
	upgrader websocket.Upgrader
}

// New wires the HTTP surface around replier. mode is reported by /health.
func New(replier Replier, factory *logging.Factory, mode string) *Server {
	return &Server{
		replier: replier,
		factory: factory,
		logger:  factory.ForHandler("http"),
		mode:    mode,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(cors.New(cors.Options{
		AllowCredentials: true,
		AllowedOrigins:   []string{"*"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept", RequestIDHeader},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		Debug:            false,
	}).Handler)
	router.Use(s.requestLogger)

	router.Get("/health", s.healthHandler)
	router.Get("/", s.healthHandler)
	router.Post("/generate", s.generateHandler)
	router.Post("/analyze", s.analyzeHandler)
	router.Get("/ws", s.chatHandler)

	return router
}

type loggerKey struct{}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		logger := s.factory.WithRequestID(s.logger, requestID)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey{}, logger)))
		logger.Debug("Request served", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) loggerFrom(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return logger
	}
	return s.logger
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"mode":      s.mode,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
