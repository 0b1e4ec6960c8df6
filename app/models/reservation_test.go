package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationIsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: RESERVATION_PENDING}).IsActive())
	assert.True(t, (&Reservation{Status: RESERVATION_CONFIRMED}).IsActive())
	assert.False(t, (&Reservation{Status: RESERVATION_ENDED}).IsActive())
	assert.False(t, (&Reservation{Status: RESERVATION_CANCELLED}).IsActive())
}

func TestReservationBeforeCreate(t *testing.T) {
	r := &Reservation{}
	require.NoError(t, r.BeforeCreate(nil))
	assert.Len(t, r.UUID, 36)

	// An already assigned identifier is kept.
	fixed := &Reservation{UUID: "existing-uuid"}
	require.NoError(t, fixed.BeforeCreate(nil))
	assert.Equal(t, "existing-uuid", fixed.UUID)
}
