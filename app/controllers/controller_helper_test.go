package controllers

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     apperr.Kind
		expected int
	}{
		{"validation", apperr.KindValidation, fiber.StatusBadRequest},
		{"invalid reference", apperr.KindInvalidReference, fiber.StatusBadRequest},
		{"invalid state", apperr.KindInvalidState, fiber.StatusBadRequest},
		{"conflict", apperr.KindConflict, fiber.StatusConflict},
		{"authorization", apperr.KindAuthorization, fiber.StatusForbidden},
		{"not found", apperr.KindNotFound, fiber.StatusNotFound},
		{"infrastructure", apperr.KindInfrastructure, fiber.StatusInternalServerError},
		{"unknown", apperr.KindUnknown, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusForKind(tt.kind))
		})
	}
}

func TestErrorNameForKind(t *testing.T) {
	assert.Equal(t, "conflict", errorNameForKind(apperr.KindConflict))
	assert.Equal(t, "validation_error", errorNameForKind(apperr.KindValidation))
	assert.Equal(t, "internal_server_error", errorNameForKind(apperr.KindUnknown))
}

func TestParseDateValue(t *testing.T) {
	date, err := parseDateValue("2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local), date)

	_, err = parseDateValue("02/09/2026")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = parseDateValue("")
	assert.Error(t, err)
}
