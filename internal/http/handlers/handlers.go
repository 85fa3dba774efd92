// Handler wiring.
//
// Handlers are transport-thin: they validate input, call application
// services through narrow interfaces, and translate results into HTTP
// responses.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invera/website-backend/internal/domain"
)

// StatusService defines the status-check operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type StatusService interface {
	// Create records a status check for clientName.
	Create(ctx context.Context, clientName string) (*domain.StatusCheck, error)
	// List returns up to 1000 status checks in insertion order.
	List(ctx context.Context) ([]domain.StatusCheck, error)
}

// ContactService defines the contact-form operations consumed by HTTP
// handlers.
type ContactService interface {
	// Submit dispatches the notification email and archives the submission.
	Submit(ctx context.Context, req domain.ContactFormRequest) (*domain.ContactResult, error)
}

// Handlers groups the HTTP endpoints for the API surface.
type Handlers struct {
	statusSvc  StatusService
	contactSvc ContactService

	// fallbackContact is the configured recipient address surfaced in the
	// dispatch-failure remediation message.
	fallbackContact string
}

// New constructs a Handlers instance bound to the given services.
func New(statusSvc StatusService, contactSvc ContactService, fallbackContact string) *Handlers {
	return &Handlers{statusSvc: statusSvc, contactSvc: contactSvc, fallbackContact: fallbackContact}
}

// Root answers the API root probe.
func (h *Handlers) Root(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"message": "Hello World"})
}
