package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/services"

	"github.com/labstack/echo/v4"
)

// addCartRequest uses the Android client's field names. Price and quantity
// are pointers so that an absent field is distinguishable from an explicit 0.
type addCartRequest struct {
	ItemName  string `json:"stringResourceId"`
	ItemPrice *int   `json:"item_price"`
	ImageURL  string `json:"imageResourceId"`
	Quantity  *int   `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	// GET cart
	p.GET("/:userId", func(c echo.Context) error {
		userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		items, err := cs.Get(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	// ADD item (repeat adds merge into the existing line)
	p.POST("/add/:userId", func(c echo.Context) error {
		userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		item, created, err := cs.Add(c.Request().Context(), userID, req.ItemName, req.ImageURL, req.ItemPrice, req.Quantity)
		if err != nil {
			switch err {
			case services.ErrCartUserNotFound, services.ErrItemNameMissing:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		if created {
			return c.String(http.StatusOK, "New item added: "+item.ItemName)
		}
		return c.String(http.StatusOK, "Quantity updated for "+item.ItemName)
	})

	// CLEAR cart
	p.DELETE("/clear/:userId", func(c echo.Context) error {
		userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		if _, err := cs.Clear(c.Request().Context(), userID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.String(http.StatusOK, fmt.Sprintf("Cart cleared for user ID: %d", userID))
	})
}
