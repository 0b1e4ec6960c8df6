package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlimendez/aulareserva/app/controllers"
	"github.com/carlimendez/aulareserva/internal/pkg/constants"
	"github.com/carlimendez/aulareserva/internal/pkg/middleware"
	"github.com/carlimendez/aulareserva/internal/pkg/session"
)

type HttpRouter struct{}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	session.NewSessionStore()
	app.Use(middleware.UserContextMiddleware)

	app.Get(constants.IndexRoute, controllers.HandleIndex)
	app.Get(constants.LoginRoute, controllers.HandleLogin)
	app.Post(constants.LoginRoute, controllers.HandleLogin)
	app.Get(constants.LogoutRoute, controllers.HandleLogout)

	app.Post("/forgot-password", controllers.HandleForgotPassword)
	app.Post("/reset-password", controllers.HandleResetPassword)

	app.Get(constants.DashboardRoute, middleware.RequireAuth, controllers.HandleDashboard)
}
