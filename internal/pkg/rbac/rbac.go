package rbac

import "github.com/carlimendez/aulareserva/app/models"

// Capability names an operation a role may perform. Authorization checks
// consult the single table below instead of repeating role lists per route.
type Capability string

const (
	CapReservationCreate  Capability = "reservations:create"
	CapReservationEdit    Capability = "reservations:edit"
	CapReservationCancel  Capability = "reservations:cancel"
	CapReservationEnd     Capability = "reservations:end"
	CapReservationViewAll Capability = "reservations:view-all"
	CapNewsManage         Capability = "news:manage"
	CapNewsSweep          Capability = "news:sweep"
	CapUsersManage        Capability = "users:manage"
	CapSuperadminManage   Capability = "users:manage-superadmins"
	CapRolesAssign        Capability = "users:assign-roles"
	CapTeachersList       Capability = "teachers:list"
)

var roleCapabilities = map[string][]Capability{
	models.ROLE_TEACHER: {
		CapReservationEnd,
	},
	models.ROLE_ADMIN: {
		CapReservationCreate,
		CapReservationEdit,
		CapReservationCancel,
		CapReservationEnd,
		CapReservationViewAll,
		CapNewsManage,
		CapUsersManage,
		CapTeachersList,
	},
	models.ROLE_SUPERADMIN: {
		CapReservationCreate,
		CapReservationEdit,
		CapReservationCancel,
		CapReservationEnd,
		CapReservationViewAll,
		CapNewsManage,
		CapNewsSweep,
		CapUsersManage,
		CapSuperadminManage,
		CapRolesAssign,
		CapTeachersList,
	},
}

// Allowed reports whether the given role carries the capability.
func Allowed(role string, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// Capabilities returns the capability list for a role, nil for unknown roles.
func Capabilities(role string) []Capability {
	return roleCapabilities[role]
}
