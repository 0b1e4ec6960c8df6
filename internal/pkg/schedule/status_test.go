package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carlimendez/aulareserva/app/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected bool
	}{
		{"pending to confirmed", models.RESERVATION_PENDING, models.RESERVATION_CONFIRMED, true},
		{"pending to ended", models.RESERVATION_PENDING, models.RESERVATION_ENDED, true},
		{"pending to cancelled", models.RESERVATION_PENDING, models.RESERVATION_CANCELLED, true},
		{"confirmed to ended", models.RESERVATION_CONFIRMED, models.RESERVATION_ENDED, true},
		{"confirmed to cancelled", models.RESERVATION_CONFIRMED, models.RESERVATION_CANCELLED, true},
		{"confirmed back to pending", models.RESERVATION_CONFIRMED, models.RESERVATION_PENDING, false},
		{"ended is terminal", models.RESERVATION_ENDED, models.RESERVATION_CANCELLED, false},
		{"cancelled is terminal", models.RESERVATION_CANCELLED, models.RESERVATION_PENDING, false},
		{"unknown status", "weird", models.RESERVATION_ENDED, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanTransition(tt.from, tt.to))
		})
	}
}
