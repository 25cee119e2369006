// Package mailer delivers order emails to the merchant.
package mailer

import (
	"context"
	"errors"
)

var (
	ErrNoRecipients = errors.New("message has no recipients")
	ErrUnavailable  = errors.New("mail transport unavailable")
)

// Message is a plain-text email
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
}

// Mailer sends a message through some transport
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

func (m Message) validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	return nil
}
