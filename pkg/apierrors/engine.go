package apierrors

import (
	"context"
	"errors"
	"net/http"

	"studytime/internal/engine"
)

// FromError maps a service error to an HTTP status and a message key.
// Unknown errors are internal.
func FromError(err error) (int, string) {
	var (
		notFound engine.NotFoundError
		category engine.InvalidCategoryError
	)
	switch {
	case errors.Is(err, engine.ErrNoSubjects):
		return http.StatusConflict, MsgNoSubjects
	case errors.Is(err, engine.ErrNoSubjectSelected):
		return http.StatusConflict, MsgNoSubjectSelected
	case errors.Is(err, engine.ErrTimerRunning):
		return http.StatusConflict, MsgTimerRunning
	case errors.Is(err, engine.ErrTimerNotRunning):
		return http.StatusConflict, MsgTimerNotRunning
	case errors.Is(err, engine.ErrEmptySession):
		return http.StatusBadRequest, MsgEmptySession
	case errors.Is(err, engine.ErrInvalidTheme):
		return http.StatusBadRequest, MsgInvalidTheme
	case errors.Is(err, engine.ErrProfileNameMissing):
		return http.StatusBadRequest, MsgProfileNameMissing
	case errors.Is(err, engine.ErrInvalidMode):
		return http.StatusBadRequest, MsgInvalidMode
	case errors.Is(err, engine.ErrInvalidInput):
		return http.StatusBadRequest, MsgInvalidPayload
	case errors.As(err, &notFound):
		return http.StatusNotFound, MsgNotFound
	case errors.As(err, &category):
		return http.StatusBadRequest, MsgInvalidCategory
	case errors.Is(err, engine.ErrLoopClosed), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, MsgInternalError
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}

// Message returns the localized text for a user-facing error, or the error
// text itself for anything internal.
func Message(err error, lang string) string {
	if err == nil {
		return ""
	}
	code, key := FromError(err)
	if code >= http.StatusInternalServerError {
		return err.Error()
	}
	return GetTransErrorMsg(key, lang)
}
