package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/galactic-greens/storefront/internal/models"
	"github.com/galactic-greens/storefront/internal/service"
)

// maxOrderBodyBytes bounds the size of an order notification request
const maxOrderBodyBytes = 1 << 20

// OrderHandler handles the order notification endpoint
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// SendOrderEmail handles POST /api/send-email
// Replies {success, message} on delivery and {success:false, error} otherwise.
func (h *OrderHandler) SendOrderEmail(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	// Parse request body
	r.Body = http.MaxBytesReader(w, r.Body, maxOrderBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		h.writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.orderService.SendOrder(r.Context(), req); err != nil {
		h.log.Error("failed to send order email", "reference", req.Reference, "error", err)

		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			h.writeFailure(w, http.StatusBadRequest, "Order must contain at least one item")
		case errors.Is(err, service.ErrMailDelivery):
			h.writeFailure(w, http.StatusInternalServerError, err.Error())
		default:
			h.writeFailure(w, http.StatusInternalServerError, "Unknown error occurred")
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.NotifyResponse{
		Success: true,
		Message: "Order email sent successfully!",
	}, h.log)
}

func (h *OrderHandler) writeFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.NotifyResponse{
		Success: false,
		Error:   message,
	}, h.log)
}
