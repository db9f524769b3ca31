// Package router đăng ký các route thuộc domain facebook.
package router

import (
	"github.com/gofiber/fiber/v3"

	facebookhdl "page_pilot/internal/api/facebook/handler"
	"page_pilot/internal/api/middleware"
	apirouter "page_pilot/internal/api/router"
)

// Register đăng ký các route tương tác Meta Graph API.
// Toàn bộ endpoint yêu cầu JWT; token upstream lấy từ body hoặc
// từ thông tin doanh nghiệp đã lưu của user.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := facebookhdl.NewFacebookHandler()
	if err != nil {
		return err
	}

	jwt := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/upload-post", jwt, handler.HandleUploadPost)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/update-post", jwt, handler.HandleUpdatePost)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/page-info", jwt, handler.HandlePageInfo)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/reply-message", jwt, handler.HandleReplyMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/reply-comment", jwt, handler.HandleReplyComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/search-pages", jwt, handler.HandleSearchPages)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/chat-history", jwt, handler.HandleChatHistory)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/fetch-page-messages", jwt, handler.HandleFetchPageMessages)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/fetch-page-feed-interactions", jwt, handler.HandleFetchPageFeedInteractions)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook", "POST", "/exchange-token", jwt, handler.HandleExchangeToken)

	return nil
}
