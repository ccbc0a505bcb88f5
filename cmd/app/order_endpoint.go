package main

import (
	"net/http"
	"strconv"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/services"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")

	// PLACE order: the body is a bare integer total, trusted as-is
	p.POST("/place/:userId", func(c echo.Context) error {
		userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		var total int
		if err := c.Bind(&total); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		if _, err := os.Place(c.Request().Context(), userID, total); err != nil {
			switch err {
			case services.ErrCartEmpty:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		return c.String(http.StatusOK, "Order Saved!")
	})

	// ORDER history
	p.GET("/user/:userId", func(c echo.Context) error {
		userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		orders, err := os.History(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, orders)
	})
}
