// Status-check HTTP handlers.
//
//   - POST /status  (create one record)
//   - GET  /status  (list, capped at 1000)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invera/website-backend/internal/domain"
)

// CreateStatusCheck records a status check and returns the stored record
// with its server-generated id and timestamp.
func (h *Handlers) CreateStatusCheck(c *gin.Context) {
	var req domain.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err)
		return
	}

	check, err := h.statusSvc.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, check)
}

// ListStatusChecks returns up to 1000 status checks.
func (h *Handlers) ListStatusChecks(c *gin.Context) {
	checks, err := h.statusSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, checks)
}
