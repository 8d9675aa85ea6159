package services

import (
	"github.com/dmitrijs2005/forumcli/internal/client/api"
	"github.com/dmitrijs2005/forumcli/internal/common"
)

// UserError is an error whose text is meant for direct display to the
// user. It wraps a sentinel from internal/common so callers can still
// classify it with errors.Is.
type UserError struct {
	Message string
	cause   error
}

// NewUserError builds a displayable error wrapping cause.
func NewUserError(message string, cause error) *UserError {
	return &UserError{Message: message, cause: cause}
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.cause }

func validationError(message string) error {
	return &UserError{Message: message, cause: common.ErrValidation}
}

func networkError() error {
	return &UserError{Message: "A network error occurred. Please check your connection.", cause: common.ErrUnavailable}
}

// remoteError converts a rejected response into a displayable error:
// a usable message from the body is surfaced verbatim, otherwise a canned
// message keyed on the status code.
func remoteError(res api.Result, fallback string) error {
	message := res.Message()

	var cause error
	switch res.Status {
	case 401:
		cause = common.ErrUnauthorized
		if message == "" {
			message = "Please log in first."
		}
	case 403:
		cause = common.ErrForbidden
		if message == "" {
			message = "You are not permitted to do that."
		}
	case 404:
		cause = common.ErrNotFound
		if message == "" {
			message = "Not found."
		}
	default:
		if message == "" {
			message = fallback
		}
	}

	return &UserError{Message: message, cause: cause}
}
