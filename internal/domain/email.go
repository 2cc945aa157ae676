package domain

import "context"

// Email is a single outgoing HTML message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender delivers transactional email.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}
