package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/galactic-greens/storefront/pkg/logger"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name        string
		mailerState func() string
		wantStatus  string
		wantMailer  string
	}{
		{name: "no breaker", mailerState: nil, wantStatus: "healthy"},
		{name: "breaker closed", mailerState: func() string { return "closed" }, wantStatus: "healthy", wantMailer: "closed"},
		{name: "breaker open", mailerState: func() string { return "open" }, wantStatus: "degraded", wantMailer: "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(logger.New("error"), tt.mailerState)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if resp.Mailer != tt.wantMailer {
				t.Errorf("mailer = %q, want %q", resp.Mailer, tt.wantMailer)
			}
			if resp.Version != Version {
				t.Errorf("version = %q, want %q", resp.Version, Version)
			}
		})
	}
}
