package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlimendez/aulareserva/app/controllers"
	"github.com/carlimendez/aulareserva/app/repository"
	"github.com/carlimendez/aulareserva/internal/pkg/middleware"
	"github.com/carlimendez/aulareserva/internal/pkg/newsfeed"
	"github.com/carlimendez/aulareserva/internal/pkg/rbac"
	"github.com/carlimendez/aulareserva/internal/pkg/schedule"
)

type ApiRouter struct{}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (a ApiRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()
	allocator := schedule.NewAllocator(repos.Reservation, repos.User)
	newsService := newsfeed.NewService(repos.News)

	reservations := controllers.NewReservationController(allocator)
	news := controllers.NewNewsController(newsService)
	users := controllers.NewUserController(repos.User)

	// Account
	app.Get("/user", middleware.RequireAPIAuth, controllers.HandleCurrentUser)
	app.Post("/profile", middleware.RequireAPIAuth, controllers.HandleProfileUpdate)
	app.Post("/change-password", middleware.RequireAPIAuth, controllers.HandleChangePassword)

	// Reservations
	app.Get("/reservations", middleware.RequireAPIAuth, reservations.HandleList)
	app.Get("/reservations/date", middleware.RequireAPIAuth, reservations.HandleListByDate)
	app.Get("/reservations/slots", middleware.RequireAPIAuth, reservations.HandleSlotGrid)
	app.Post("/reservations", middleware.RequireCapability(rbac.CapReservationCreate), reservations.HandleCreate)
	app.Get("/reservations/edit/:id", middleware.RequireCapability(rbac.CapReservationEdit), reservations.HandleGet)
	app.Post("/reservations/edit/:id", middleware.RequireCapability(rbac.CapReservationEdit), reservations.HandleEdit)
	app.Post("/reservations/cancel/:id", middleware.RequireCapability(rbac.CapReservationCancel), reservations.HandleCancel)
	app.Post("/reservations/end/:id", middleware.RequireCapability(rbac.CapReservationEnd), reservations.HandleConfirmEnd)
	app.Delete("/reservations/delete/:id", middleware.RequireCapability(rbac.CapReservationEdit), reservations.HandleDelete)

	// News
	app.Get("/news/active", middleware.RequireAPIAuth, news.HandleActive)
	app.Get("/news", middleware.RequireCapability(rbac.CapNewsManage), news.HandleAll)
	app.Post("/news/create", middleware.RequireCapability(rbac.CapNewsManage), news.HandleCreate)
	app.Get("/news/edit/:id", middleware.RequireCapability(rbac.CapNewsManage), news.HandleGet)
	app.Post("/news/edit/:id", middleware.RequireCapability(rbac.CapNewsManage), news.HandleEdit)
	app.Delete("/news/delete/:id", middleware.RequireCapability(rbac.CapNewsManage), news.HandleDelete)
	app.Post("/news/clean-expired", middleware.RequireCapability(rbac.CapNewsSweep), news.HandleSweepExpired)

	// Users
	app.Get("/users", middleware.RequireCapability(rbac.CapUsersManage), users.HandleList)
	app.Post("/users/create", middleware.RequireCapability(rbac.CapUsersManage), users.HandleCreate)
	app.Get("/users/edit/:id", middleware.RequireCapability(rbac.CapUsersManage), users.HandleGet)
	app.Post("/users/edit/:id", middleware.RequireCapability(rbac.CapUsersManage), users.HandleEdit)
	app.Delete("/users/delete/:id", middleware.RequireCapability(rbac.CapUsersManage), users.HandleDelete)
	app.Get("/teachers", middleware.RequireCapability(rbac.CapTeachersList), users.HandleTeachers)
}
