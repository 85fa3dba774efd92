package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures under the JSON field names clients actually
// send, not the Go struct field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// failValidation translates a binding error into a 422 response with
// field-level detail. Malformed JSON (no field information available)
// yields a single-message 422.
func failValidation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:  fe.Field(),
				Reason: reasonFor(fe),
			})
		}
		fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "invalid request payload", fields...)
		return
	}
	fail(c, http.StatusUnprocessableEntity, ErrCodeValidation, "invalid request payload")
}

// reasonFor maps a validator tag to a short human-readable reason.
func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "value is not a valid email address"
	default:
		return "failed validation rule " + fe.Tag()
	}
}
