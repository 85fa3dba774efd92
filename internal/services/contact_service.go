// Package services – ContactService
//
// This file implements the ContactService, which turns a validated
// contact-form request into a provider email and an archived submission.
// The invariant enforced here: a submission document is written only after
// the dispatch succeeded. Dispatch failures are logged with full detail and
// surfaced as ErrDispatchFailed so the handler can reply with a remediation
// message that omits provider internals.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/invera/website-backend/internal/docstore"
	"github.com/invera/website-backend/internal/domain"
	"github.com/invera/website-backend/internal/email"
)

// successMessage is the user-facing confirmation for accepted submissions.
const successMessage = "Your message has been sent successfully! We'll get back to you soon."

// ContactService renders, dispatches, and archives contact-form submissions.
type ContactService struct {
	Store  Store
	Mailer email.Sender

	// Sender and Recipient are the fixed addresses used for every
	// notification, taken from server configuration at startup.
	Sender    string
	Recipient string
}

// NewContactService constructs a ContactService with the given collaborators.
func NewContactService(store Store, mailer email.Sender, sender, recipient string) *ContactService {
	return &ContactService{Store: store, Mailer: mailer, Sender: sender, Recipient: recipient}
}

// Submit renders the notification email, dispatches it, and — only when the
// dispatch succeeded — archives the submission and returns the success
// result carrying the provider message id (nil when the provider reported
// none). A failed dispatch returns an error wrapping ErrDispatchFailed and
// leaves no trace in the store.
func (s *ContactService) Submit(ctx context.Context, req domain.ContactFormRequest) (*domain.ContactResult, error) {
	subject, body, err := email.RenderContactEmail(req, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	id, err := s.Mailer.Send(ctx, email.Message{
		From:    s.Sender,
		To:      []string{s.Recipient},
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send contact form email")
		return nil, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	log.Info().Str("recipient", s.Recipient).Msg("contact form email sent successfully")

	var emailID *string
	if id != "" {
		emailID = &id
	}

	sub := domain.ContactSubmission{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
		EmailID:   emailID,
	}
	// Persistence happens strictly after, and conditioned on, dispatch
	// success. A store failure here is distinct from the dispatch path.
	if err := s.Store.InsertOne(ctx, docstore.ContactSubmissions, sub); err != nil {
		return nil, err
	}

	return &domain.ContactResult{
		Status:  "success",
		Message: successMessage,
		EmailID: emailID,
	}, nil
}
