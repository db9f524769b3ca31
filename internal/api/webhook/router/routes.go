// Package router đăng ký các route thuộc domain Webhook.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"page_pilot/internal/api/middleware"
	apirouter "page_pilot/internal/api/router"
	webhookhdl "page_pilot/internal/api/webhook/handler"
)

// Register đăng ký các route webhook lên v1.
// GET và POST /webhook là public vì Meta gọi trực tiếp; danh sách log
// yêu cầu JWT.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := webhookhdl.NewWebhookHandler()
	if err != nil {
		return fmt.Errorf("create webhook handler: %w", err)
	}

	v1.Get("/webhook", handler.HandleVerify)
	v1.Post("/webhook", handler.HandleEvent)

	jwt := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/webhook", "GET", "/logs", jwt, handler.HandleListLogs)

	return nil
}
