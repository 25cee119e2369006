package order

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingPhone         = errors.New("a phone number is required")
	ErrSubmissionInProgress = errors.New("an order submission is already in progress")
)

// ValidationError reports a precondition that failed before anything was sent
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// TransportError reports that the notification call could not complete:
// network failure, timeout, or a response that could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach the order service: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceRejectedError reports that the notification service answered but
// did not accept the order.
type ServiceRejectedError struct {
	StatusCode int
	Reason     string
}

func (e *ServiceRejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("order service rejected the order (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("order service rejected the order (status %d): %s", e.StatusCode, e.Reason)
}

// UserMessage turns a submission error into a plain-language notice
func UserMessage(err error) string {
	var (
		validationErr *ValidationError
		transportErr  *TransportError
		rejectedErr   *ServiceRejectedError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSubmissionInProgress):
		return "Your order is already being sent, please wait."
	case errors.As(err, &validationErr):
		switch {
		case errors.Is(err, ErrEmptyCart):
			return "Your cart is empty. Add something before sending an order."
		case errors.Is(err, ErrMissingPhone):
			return "Please enter a phone or WhatsApp number so we can reach you."
		}
		return "Please check your order details and try again."
	case errors.As(err, &transportErr), errors.As(err, &rejectedErr):
		return "Failed to send order. Please try again."
	}
	return "Something went wrong. Please try again."
}
