package main

import (
	"net/http"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		_, err := authSvc.Register(c.Request().Context(), req.Username, req.Password, req.Email)
		if err != nil {
			switch err {
			case services.ErrUsernameRequired, services.ErrUsernameTaken, services.ErrEmailTaken:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "User registered successfully"})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		user, err := authSvc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				return c.String(http.StatusNotFound, err.Error())
			case services.ErrWrongPassword:
				return c.String(http.StatusUnauthorized, err.Error())
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		// the row still carries the digest; the client ignores the field
		return c.JSON(http.StatusOK, user)
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	auth := g.Group("/auth")
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/login", loginHandler(authSvc))
}
