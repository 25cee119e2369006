// Package order turns a cart snapshot into a single order notification.
package order

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/galactic-greens/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLine   = errors.New("cart line quantity must be positive")
	ErrEmptyResponse = errors.New("order service returned an empty response")
)

// Notifier delivers an order to the order notification service
type Notifier interface {
	Notify(ctx context.Context, req models.OrderRequest) (*models.NotifyResponse, error)
}

// Contact holds the contact fields of the order form
type Contact struct {
	Name  string
	Phone string
	Notes string
}

// IsZero reports whether every field is blank
func (c Contact) IsZero() bool {
	return strings.TrimSpace(c.Name) == "" &&
		strings.TrimSpace(c.Phone) == "" &&
		strings.TrimSpace(c.Notes) == ""
}

// Confirmation is returned when the notification service accepted the order
type Confirmation struct {
	Reference string
	Message   string
	Total     decimal.Decimal
	Lines     int
	SentAt    time.Time
}

// Submitter performs one notification call per user action. It never
// retries and refuses a second submission while one is outstanding.
type Submitter struct {
	notifier     Notifier
	log          *slog.Logger
	now          func() time.Time
	newReference func() string
	onTransition func(from, to State)

	submitting atomic.Bool

	mu    sync.Mutex
	state State
	last  State
}

// Option configures a Submitter
type Option func(*Submitter)

// WithLogger sets the logger used for state transitions and outcomes
func WithLogger(log *slog.Logger) Option {
	return func(s *Submitter) { s.log = log }
}

// WithTransitionHook registers fn to observe every state transition
func WithTransitionHook(fn func(from, to State)) Option {
	return func(s *Submitter) { s.onTransition = fn }
}

// WithClock overrides the time source used for Confirmation.SentAt
func WithClock(now func() time.Time) Option {
	return func(s *Submitter) { s.now = now }
}

// WithReferenceGenerator overrides how order references are generated
func WithReferenceGenerator(fn func() string) Option {
	return func(s *Submitter) { s.newReference = fn }
}

// NewSubmitter creates a submitter sending through notifier
func NewSubmitter(notifier Notifier, opts ...Option) *Submitter {
	s := &Submitter{
		notifier:     notifier,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:          time.Now,
		newReference: generateReference,
		state:        StateIdle,
		last:         StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the cart and contact fields, then sends the order once.
//
// Errors are *ValidationError (nothing was sent), *TransportError,
// *ServiceRejectedError or ErrSubmissionInProgress. The caller owns the cart
// and decides what to reset on success.
func (s *Submitter) Submit(ctx context.Context, lines []models.CartLine, contact Contact) (*Confirmation, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer s.submitting.Store(false)
	defer s.transition(StateIdle)

	s.transition(StateValidating)
	if err := Validate(lines, contact); err != nil {
		s.log.Info("order rejected before sending", "error", err)
		s.transition(StateRejected)
		return nil, err
	}

	req := BuildRequest(s.newReference(), lines, contact)

	s.transition(StateSending)
	resp, err := s.notifier.Notify(ctx, req)
	if err != nil {
		s.log.Error("order notification failed", "reference", req.Reference, "error", err)
		s.transition(StateFailed)
		return nil, &TransportError{Err: err}
	}
	if resp == nil {
		s.log.Error("order notification failed", "reference", req.Reference, "error", ErrEmptyResponse)
		s.transition(StateFailed)
		return nil, &TransportError{Err: ErrEmptyResponse}
	}

	if !resp.Success || resp.StatusCode >= 300 {
		reason := resp.Error
		if reason == "" {
			reason = resp.Message
		}
		s.log.Warn("order notification rejected",
			"reference", req.Reference,
			"status", resp.StatusCode,
			"reason", reason,
		)
		s.transition(StateFailed)
		return nil, &ServiceRejectedError{StatusCode: resp.StatusCode, Reason: reason}
	}

	s.transition(StateConfirmed)
	s.log.Info("order sent", "reference", req.Reference, "total", req.Total.String(), "lines", len(req.Cart))

	return &Confirmation{
		Reference: req.Reference,
		Message:   resp.Message,
		Total:     req.Total,
		Lines:     len(req.Cart),
		SentAt:    s.now(),
	}, nil
}

// State returns the phase of the current attempt
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastOutcome returns the terminal state of the most recent attempt, or
// StateIdle if nothing has been attempted yet.
func (s *Submitter) LastOutcome() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// InFlight reports whether a submission is outstanding
func (s *Submitter) InFlight() bool {
	return s.submitting.Load()
}

func (s *Submitter) transition(to State) {
	s.mu.Lock()
	from := s.state
	if !canTransition(from, to) {
		s.mu.Unlock()
		s.log.Error("illegal submission state transition", "from", from, "to", to)
		return
	}
	s.state = to
	if to.IsTerminal() {
		s.last = to
	}
	hook := s.onTransition
	s.mu.Unlock()

	s.log.Debug("submission state changed", "from", from, "to", to)
	if hook != nil {
		hook(from, to)
	}
}

// Validate checks the submission preconditions: a non-empty cart of positive
// lines and a reachable phone number. Name and notes are optional.
func Validate(lines []models.CartLine, contact Contact) error {
	if len(lines) == 0 {
		return &ValidationError{Field: "cart", Err: ErrEmptyCart}
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return &ValidationError{Field: "cart", Err: ErrInvalidLine}
		}
	}
	if strings.TrimSpace(contact.Phone) == "" {
		return &ValidationError{Field: "phone", Err: ErrMissingPhone}
	}
	return nil
}

// BuildRequest snapshots lines and contact fields into an OrderRequest whose
// total equals the sum of its line totals.
func BuildRequest(reference string, lines []models.CartLine, contact Contact) models.OrderRequest {
	req := models.OrderRequest{
		Reference: reference,
		Cart:      make([]models.OrderLine, 0, len(lines)),
		Total:     decimal.Zero,
		Name:      strings.TrimSpace(contact.Name),
		Phone:     strings.TrimSpace(contact.Phone),
		Notes:     strings.TrimSpace(contact.Notes),
	}
	for _, line := range lines {
		ol := models.NewOrderLine(line)
		req.Cart = append(req.Cart, ol)
		req.Total = req.Total.Add(ol.Total)
	}
	return req
}

func generateReference() string {
	return uuid.New().String()
}
