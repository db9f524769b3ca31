// Package router đăng ký các route thuộc domain schedule.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"page_pilot/internal/api/middleware"
	apirouter "page_pilot/internal/api/router"
	schedulehdl "page_pilot/internal/api/schedule/handler"
	models "page_pilot/internal/api/schedule/models"
)

// Register đăng ký các route quản lý lịch lên v1. Tất cả yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := schedulehdl.NewScheduleHandler()
	if err != nil {
		return fmt.Errorf("failed to create schedule handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "POST", "/", mws, handler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "GET", "/users/:userId", mws, handler.HandleGetByUserID)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "PUT", "/users/:userId", mws, handler.HandleReplace)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "DELETE", "/users/:userId", mws, handler.HandleDeleteByUserID)

	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "POST", "/users/:userId/posts", mws, handler.HandleAddPost)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "PUT", "/users/:userId/posts/:itemId", mws, handler.HandleUpdateSlot(models.ListPosts))
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "DELETE", "/users/:userId/posts/:itemId", mws, handler.HandleRemoveSlot(models.ListPosts))

	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "POST", "/users/:userId/competitor-analysis", mws, handler.HandleAddCompetitorAnalysis)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "PUT", "/users/:userId/competitor-analysis/:itemId", mws, handler.HandleUpdateSlot(models.ListCompetitorAnalysis))
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "DELETE", "/users/:userId/competitor-analysis/:itemId", mws, handler.HandleRemoveSlot(models.ListCompetitorAnalysis))

	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "POST", "/users/:userId/interaction-dates", mws, handler.HandleAddInteractionDate)
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "PUT", "/users/:userId/interaction-dates/:itemId", mws, handler.HandleUpdateSlot(models.ListInteractionAnalysisDates))
	apirouter.RegisterRouteWithMiddleware(v1, "/schedule", "DELETE", "/users/:userId/interaction-dates/:itemId", mws, handler.HandleRemoveSlot(models.ListInteractionAnalysisDates))
	return nil
}
