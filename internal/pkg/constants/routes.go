package constants

// Static route constants
const (
	IndexRoute     = "/"
	LoginRoute     = "/login"
	LogoutRoute    = "/logout"
	DashboardRoute = "/dashboard"
	AssetsRoute    = "/assets"
)
