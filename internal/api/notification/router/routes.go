// Package router đăng ký các route thuộc domain notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"page_pilot/internal/api/middleware"
	notificationhdl "page_pilot/internal/api/notification/handler"
	apirouter "page_pilot/internal/api/router"
)

// Register đăng ký các route thông báo lên v1. Tất cả yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := notificationhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "POST", "/send", mws, handler.HandleSend)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/users/:userId", mws, handler.HandleListByUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/users/:userId/unseen-count", mws, handler.HandleCountUnseen)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "PUT", "/mark-seen", mws, handler.HandleMarkSeen)

	// CRUD theo id cho quản trị thông báo. Đăng ký sau các route tĩnh
	// để /send, /users/..., /mark-seen được match trước /:id.
	r.RegisterCRUDRoutes(v1, "/notifications", handler, apirouter.ReadWriteConfig)
	return nil
}
