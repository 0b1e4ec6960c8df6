package viewmodel

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlimendez/aulareserva/internal/pkg/statistics"
)

// Layout carries the data every rendered page shares.
type Layout struct {
	Page     string
	Username string
	Role     string
	IsAdmin  bool
	Msg      fiber.Map
}

// Dashboard is the data behind the dashboard shell. The news feed and the
// slot grid are fetched by the page itself through the JSON endpoints.
type Dashboard struct {
	Layout
	Stats statistics.StatisticsData
}
