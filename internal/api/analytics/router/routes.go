// Package router đăng ký các route thuộc domain analytics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "page_pilot/internal/api/analytics/handler"
	models "page_pilot/internal/api/analytics/models"
	"page_pilot/internal/api/middleware"
	apirouter "page_pilot/internal/api/router"
)

// Register đăng ký các route analytics lên v1. Tất cả yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("failed to create analytics handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	mws := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/recommendations", mws, handler.HandleCreateRecommendation)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/users/:userId/recommendations", mws, handler.HandleListRecommendations)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/analysis", mws, handler.HandleCreateAnalysis)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/users/:userId/analysis/competitor", mws, handler.HandleListAnalyses(models.AnalysisTypeCompetitor))
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/users/:userId/analysis/interaction", mws, handler.HandleListAnalyses(models.AnalysisTypeInteraction))
	return nil
}
