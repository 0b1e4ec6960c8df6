package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(KindValidation, "date cannot be in the past")
	assert.Equal(t, "date cannot be in the past", err.Error())

	cause := errors.New("connection refused")
	wrapped := Wrap(KindInfrastructure, "failed to save reservation", cause)
	assert.Equal(t, "failed to save reservation: connection refused", wrapped.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(KindConflict, "slot overlaps existing reservation %s-%s", "09:00", "09:45")
	assert.Equal(t, "slot overlaps existing reservation 09:00-09:45", err.Message)
	assert.Equal(t, KindConflict, err.Kind)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "gone")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))

	// The kind survives further wrapping with %w.
	inner := New(KindAuthorization, "not allowed")
	outer := fmt.Errorf("handling request: %w", inner)
	assert.Equal(t, KindAuthorization, KindOf(outer))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate entry")
	err := Wrap(KindConflict, "email already registered", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestIs(t *testing.T) {
	err := New(KindInvalidState, "reservation is already cancelled or finished")
	assert.True(t, Is(err, KindInvalidState))
	assert.False(t, Is(err, KindValidation))
	assert.False(t, Is(nil, KindInvalidState))
}
