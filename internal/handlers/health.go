package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger      *slog.Logger
	mailerState func() string
}

// NewHealthHandler creates a new health handler. mailerState, when set,
// reports the state of the mail transport breaker.
func NewHealthHandler(logger *slog.Logger, mailerState func() string) *HealthHandler {
	return &HealthHandler{
		logger:      logger,
		mailerState: mailerState,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Mailer    string    `json:"mailer,omitempty"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
	}

	// An open breaker means orders cannot be delivered right now
	if h.mailerState != nil {
		response.Mailer = h.mailerState()
		if response.Mailer == "open" {
			response.Status = "degraded"
		}
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
