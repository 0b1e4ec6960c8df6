package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carlimendez/aulareserva/app/models"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		cap      Capability
		expected bool
	}{
		{"teacher may end own reservations", models.ROLE_TEACHER, CapReservationEnd, true},
		{"teacher may not create reservations", models.ROLE_TEACHER, CapReservationCreate, false},
		{"teacher may not manage news", models.ROLE_TEACHER, CapNewsManage, false},
		{"admin may create reservations", models.ROLE_ADMIN, CapReservationCreate, true},
		{"admin may manage users", models.ROLE_ADMIN, CapUsersManage, true},
		{"admin may not manage superadmins", models.ROLE_ADMIN, CapSuperadminManage, false},
		{"admin may not assign roles", models.ROLE_ADMIN, CapRolesAssign, false},
		{"admin may not trigger the sweep", models.ROLE_ADMIN, CapNewsSweep, false},
		{"superadmin may assign roles", models.ROLE_SUPERADMIN, CapRolesAssign, true},
		{"superadmin may trigger the sweep", models.ROLE_SUPERADMIN, CapNewsSweep, true},
		{"unknown role has nothing", "guest", CapReservationEnd, false},
		{"empty role has nothing", "", CapTeachersList, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Allowed(tt.role, tt.cap))
		})
	}
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t, []Capability{CapReservationEnd}, Capabilities(models.ROLE_TEACHER))
	assert.Nil(t, Capabilities("guest"))

	// Superadmin holds every admin capability plus its own.
	super := Capabilities(models.ROLE_SUPERADMIN)
	for _, cap := range Capabilities(models.ROLE_ADMIN) {
		assert.Contains(t, super, cap)
	}
}
