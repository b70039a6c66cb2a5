package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Meal     *handler.MealHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Provider *handler.ProviderHandler
	Review   *handler.ReviewHandler
	Admin    *handler.AdminHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Meal.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Provider.RegisterRoutes(e, cfg)
	h.Review.RegisterRoutes(e, cfg)
	h.Admin.RegisterRoutes(e, cfg)
}
