// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "page_pilot/internal/api/auth/handler"
	"page_pilot/internal/api/middleware"
	apirouter "page_pilot/internal/api/router"
)

// Register đăng ký các route auth lên v1.
// Register và login là route public, các route còn lại yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	v1.Post("/auth/register", userHandler.HandleRegister)
	v1.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "DELETE", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleDeleteAccount)
	return nil
}
