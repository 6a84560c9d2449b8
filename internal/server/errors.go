package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/JoHn11117/resume-scorer/internal/fetch"
	"github.com/JoHn11117/resume-scorer/internal/parser"
	"github.com/JoHn11117/resume-scorer/internal/roles"
	"github.com/JoHn11117/resume-scorer/internal/store"
)

// httpStatus maps domain errors onto HTTP status codes. Unreadable
// documents are a client problem with an otherwise well-formed request,
// hence 422 rather than 400.
func httpStatus(err error) int {
	var (
		unreadable  *parser.UnreadableDocumentError
		empty       *parser.EmptyDocumentError
		protected   *parser.ProtectedDocumentError
		unsupported *parser.UnsupportedFormatError
		invalidRole *roles.InvalidRoleOrLevelError
		rangeErr    *store.RangeError
		fetchErr    *fetch.Error
		validation  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &unreadable), errors.As(err, &empty), errors.As(err, &protected):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unsupported), errors.As(err, &invalidRole),
		errors.As(err, &rangeErr), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
