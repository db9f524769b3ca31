// Package router đăng ký các route thuộc domain business.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"page_pilot/internal/api/middleware"
	apirouter "page_pilot/internal/api/router"
	businesshdl "page_pilot/internal/api/business/handler"
)

// Register đăng ký các route hồ sơ doanh nghiệp lên v1. Tất cả yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := businesshdl.NewBusinessInfoHandler()
	if err != nil {
		return fmt.Errorf("failed to create business info handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "POST", "/", []fiber.Handler{authMiddleware}, handler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "GET", "/users/:userId", []fiber.Handler{authMiddleware}, handler.HandleGetByUserID)
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "PUT", "/users/:userId", []fiber.Handler{authMiddleware}, handler.HandleReplace)
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "DELETE", "/users/:userId", []fiber.Handler{authMiddleware}, handler.HandleDeleteByUserID)
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "PUT", "/users/:userId/token", []fiber.Handler{authMiddleware}, handler.HandleUpdateFacebookCredentials)
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "POST", "/users/:userId/list-items", []fiber.Handler{authMiddleware}, handler.HandleAddListItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "GET", "/", []fiber.Handler{authMiddleware}, handler.HandleListByField)
	apirouter.RegisterRouteWithMiddleware(v1, "/business-info", "GET", "/search", []fiber.Handler{authMiddleware}, handler.HandleSearchByKeyword)
	return nil
}
