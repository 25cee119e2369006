package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/galactic-greens/storefront/internal/mailer"
	"github.com/galactic-greens/storefront/internal/models"
)

var (
	ErrEmptyOrder   = errors.New("order must contain at least one item")
	ErrMailDelivery = errors.New("failed to deliver order email")
)

// OrderMailConfig controls how order emails are addressed
type OrderMailConfig struct {
	StoreName string
	From      string
	To        []string
}

// OrderService formats orders into emails and hands them to the mail transport
type OrderService struct {
	mailer mailer.Mailer
	cfg    OrderMailConfig
	log    *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(m mailer.Mailer, cfg OrderMailConfig, log *slog.Logger) *OrderService {
	if cfg.StoreName == "" {
		cfg.StoreName = "Galactic Greens"
	}
	return &OrderService{
		mailer: m,
		cfg:    cfg,
		log:    log,
	}
}

// SendOrder emails the order to the merchant. One attempt, no retry.
func (s *OrderService) SendOrder(ctx context.Context, req models.OrderRequest) error {
	if len(req.Cart) == 0 {
		return ErrEmptyOrder
	}

	msg := s.ComposeEmail(req)
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info("order email sent",
		"reference", req.Reference,
		"items_count", len(req.Cart),
		"total", req.Total.String(),
	)
	return nil
}

// ComposeEmail renders the order as a plain-text email
func (s *OrderService) ComposeEmail(req models.OrderRequest) mailer.Message {
	subject := "New Order from " + s.cfg.StoreName
	if req.Reference != "" {
		subject += " (" + shortReference(req.Reference) + ")"
	}

	var b strings.Builder
	b.WriteString("NEW ORDER FROM WEBSITE\n")
	if req.Reference != "" {
		fmt.Fprintf(&b, "Reference: %s\n", req.Reference)
	}
	b.WriteString("\n")
	for _, line := range req.Cart {
		fmt.Fprintf(&b, "%d x %s - KES %s\n", line.Quantity, line.Name, models.FormatAmount(line.Total))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: KES %s\n", models.FormatAmount(req.Total))
	fmt.Fprintf(&b, "Name: %s\n", orNA(req.Name))
	fmt.Fprintf(&b, "Delivery Notes: %s\n", orNA(req.Notes))
	fmt.Fprintf(&b, "Phone: %s\n", orNA(req.Phone))

	return mailer.Message{
		From:    s.cfg.From,
		To:      s.cfg.To,
		Subject: subject,
		Text:    b.String(),
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func shortReference(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
