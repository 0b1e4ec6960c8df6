package schedule

import "github.com/carlimendez/aulareserva/app/models"

// The status machine is forward-only: pending and confirmed may move to any
// later state, ended and cancelled are terminal.
var statusTransitions = map[string][]string{
	models.RESERVATION_PENDING:   {models.RESERVATION_CONFIRMED, models.RESERVATION_ENDED, models.RESERVATION_CANCELLED},
	models.RESERVATION_CONFIRMED: {models.RESERVATION_ENDED, models.RESERVATION_CANCELLED},
	models.RESERVATION_ENDED:     {},
	models.RESERVATION_CANCELLED: {},
}

// CanTransition reports whether a reservation may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
