package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		e := NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)

		assert.Equal(t, "INVOICE_NOT_FOUND: Invoice not found", e.Error())
		assert.Equal(t, http.StatusNotFound, e.HTTPStatus)
		assert.Nil(t, e.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		cause := errors.New("connection refused")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

		assert.ErrorIs(t, e, cause)
		assert.Contains(t, e.Error(), "connection refused")
	})

	t.Run("http body hides the cause", func(t *testing.T) {
		cause := errors.New("password authentication failed")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

		body := e.ToHTTPError()
		assert.Equal(t, "error", body.Type)
		assert.Equal(t, "INTERNAL_ERROR", body.Code)
		assert.Equal(t, "An internal error occurred", body.Message)
	})
}
