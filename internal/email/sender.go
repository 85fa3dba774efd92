// Package email provides the outbound email contract, the Resend-backed
// implementation, and the contact-notification template.
package email

import "context"

// Message is a single outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender dispatches an email through a transactional provider and returns
// the provider-assigned message id. Implementations must be safe for
// concurrent use; an empty id with a nil error means the provider accepted
// the message but did not report an id.
type Sender interface {
	Send(ctx context.Context, msg Message) (id string, err error)
}
