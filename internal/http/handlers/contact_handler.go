// Contact-form HTTP handler.
//
//   - POST /contact (validate, dispatch notification email, archive)
//
// Dispatch failures surface as 500 with a remediation message naming the
// configured fallback address; provider-internal detail never reaches the
// client (it is logged server-side by the service).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invera/website-backend/internal/domain"
	"github.com/invera/website-backend/internal/services"
)

// SubmitContact handles a contact-form submission.
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req domain.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	res, err := h.contactSvc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrDispatchFailed) {
			fail(c, http.StatusInternalServerError, ErrCodeDispatchFailed,
				"Failed to send message. Please try again later or contact us directly at "+h.fallbackContact)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, res)
}
