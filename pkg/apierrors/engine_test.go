package apierrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"studytime/internal/engine"
	"studytime/pkg/apierrors"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		key    string
	}{
		{"no subjects", engine.ErrNoSubjects, http.StatusConflict, apierrors.MsgNoSubjects},
		{"no selection", engine.ErrNoSubjectSelected, http.StatusConflict, apierrors.MsgNoSubjectSelected},
		{"running", fmt.Errorf("set mode: %w", engine.ErrTimerRunning), http.StatusConflict, apierrors.MsgTimerRunning},
		{"not running", engine.ErrTimerNotRunning, http.StatusConflict, apierrors.MsgTimerNotRunning},
		{"empty", engine.ErrEmptySession, http.StatusBadRequest, apierrors.MsgEmptySession},
		{"not found", engine.NotFoundError{Kind: "task", ID: "x"}, http.StatusNotFound, apierrors.MsgNotFound},
		{"category", engine.InvalidCategoryError{Category: "Cooking"}, http.StatusBadRequest, apierrors.MsgInvalidCategory},
		{"mode", fmt.Errorf("%w %q", engine.ErrInvalidMode, "lap"), http.StatusBadRequest, apierrors.MsgInvalidMode},
		{"input", fmt.Errorf("%w: name is required", engine.ErrInvalidInput), http.StatusBadRequest, apierrors.MsgInvalidPayload},
		{"loop", engine.ErrLoopClosed, http.StatusServiceUnavailable, apierrors.MsgInternalError},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, apierrors.MsgInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, key := apierrors.FromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Empty(t, apierrors.Message(nil, "en"))
	// No translation is loaded for this key in these tests.
	assert.Equal(t, apierrors.MsgNoSubjects, apierrors.Message(engine.ErrNoSubjects, "en"))
	assert.Equal(t, "disk on fire", apierrors.Message(errors.New("disk on fire"), "en"))
}
