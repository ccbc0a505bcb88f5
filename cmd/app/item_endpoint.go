package main

import (
	"net/http"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/services"

	"github.com/labstack/echo/v4"
)

// The catalog keeps its legacy path: the Android client was originally fed a
// static items.json and still requests that name.
func registerItemRoutes(e *echo.Echo, is *services.ItemService) {
	g := e.Group("/android/grocery_delivery_app")

	// LIST items, optionally ?category= (case-insensitive)
	g.GET("/items.json", func(c echo.Context) error {
		items, err := is.List(c.Request().Context(), c.QueryParam("category"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	// ADD item
	g.POST("/add", func(c echo.Context) error {
		req := new(model.InternetItem)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		item, err := is.Add(c.Request().Context(), *req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	})
}
