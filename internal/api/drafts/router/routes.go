// Package router đăng ký các route thuộc domain drafts.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	draftshdl "page_pilot/internal/api/drafts/handler"
	models "page_pilot/internal/api/drafts/models"
	"page_pilot/internal/api/middleware"
	apirouter "page_pilot/internal/api/router"
)

// Register đăng ký các route quản lý bài nháp lên v1. Tất cả yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := draftshdl.NewPostHandler()
	if err != nil {
		return fmt.Errorf("failed to create post handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "POST", "/", mws, handler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "GET", "/users/:userId", mws, handler.HandleListByStatus(models.PostStatusDraft))
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "GET", "/users/:userId/accepted", mws, handler.HandleListByStatus(models.PostStatusAccepted))
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "GET", "/users/:userId/rejected", mws, handler.HandleListByStatus(models.PostStatusRejected))
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "GET", "/:id", mws, handler.HandleGetDraft)
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "PUT", "/:id", mws, handler.HandleEdit)
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "PUT", "/:id/accept", mws, handler.HandleChangeStatus(models.PostStatusAccepted))
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "PUT", "/:id/reject", mws, handler.HandleChangeStatus(models.PostStatusRejected))
	apirouter.RegisterRouteWithMiddleware(v1, "/drafts", "PUT", "/:id/rate", mws, handler.HandleRate)
	return nil
}
