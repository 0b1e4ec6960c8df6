package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/carlimendez/aulareserva/internal/pkg/constants"
	"github.com/carlimendez/aulareserva/internal/pkg/statistics"
	"github.com/carlimendez/aulareserva/internal/pkg/usercontext"
	"github.com/carlimendez/aulareserva/internal/pkg/viewmodel"
)

// HandleDashboard renders the dashboard shell; the news feed and slot grid
// are loaded by the page itself through the JSON endpoints.
func HandleDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	vm := viewmodel.Dashboard{
		Layout: viewmodel.Layout{
			Page:     "dashboard",
			Username: userCtx.Username,
			Role:     userCtx.Role,
			IsAdmin:  userCtx.IsAdmin(),
			Msg:      flash.Get(c),
		},
		Stats: statistics.GetStatisticsData(),
	}

	return c.Render("dashboard", fiber.Map{
		"Page":     vm.Page,
		"Username": vm.Username,
		"Role":     vm.Role,
		"IsAdmin":  vm.IsAdmin,
		"Flash":    vm.Msg,
		"Stats":    vm.Stats,
	})
}

// HandleIndex redirects to the dashboard for logged-in users, otherwise to
// the login page.
func HandleIndex(c *fiber.Ctx) error {
	if usercontext.IsLoggedIn(c) {
		return c.Redirect(constants.DashboardRoute)
	}
	return c.Redirect(constants.LoginRoute)
}
