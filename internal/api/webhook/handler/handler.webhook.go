// Package webhookhdl - handler nhận webhook từ Meta Platform.
package webhookhdl

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "page_pilot/internal/api/base/handler"
	webhookmodels "page_pilot/internal/api/webhook/models"
	webhooksvc "page_pilot/internal/api/webhook/service"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
	"page_pilot/internal/logger"
)

// WebhookHandler xử lý các request webhook từ Meta: xác minh subscription
// (GET) và ghi nhận sự kiện (POST).
type WebhookHandler struct {
	webhookLogService *webhooksvc.WebhookLogService
}

// NewWebhookHandler tạo mới WebhookHandler
func NewWebhookHandler() (*WebhookHandler, error) {
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	return &WebhookHandler{
		webhookLogService: webhookLogService,
	}, nil
}

// HandleVerify xử lý GET verify của Meta khi đăng ký webhook.
// Meta gửi hub.mode, hub.verify_token và hub.challenge; token khớp thì
// trả lại challenge dạng plain text, không thì 403.
func (h *WebhookHandler) HandleVerify(c fiber.Ctx) error {
	mode := c.Query("hub.mode")
	verifyToken := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && verifyToken == global.MongoDB_ServerConfig.WebhookVerifyToken {
		logger.GetAppLogger().Info("🔔 [WEBHOOK] Xác minh subscription thành công")
		return c.Status(common.StatusOK).SendString(challenge)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"mode": mode,
	}).Warn("🔔 [WEBHOOK] Xác minh subscription thất bại, verify token không khớp")
	return basehdl.ErrorResponse(c, common.NewError(
		common.ErrCodeAuthCredentials,
		"Verify token không hợp lệ",
		common.StatusForbidden,
		nil,
	))
}

// HandleEvent nhận sự kiện webhook từ Meta và lưu log.
// Luôn trả 200 để Meta không gửi lại sự kiện, kể cả khi payload hỏng
// hoặc lưu log thất bại.
func (h *WebhookHandler) HandleEvent(c fiber.Ctx) error {
	log := logger.GetAppLogger()
	rawBody := string(c.Body())

	webhookLog := webhookmodels.WebhookLog{
		IPAddress: c.IP(),
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		webhookLog.RawBody = rawBody
	} else {
		webhookLog.Payload = payload
		if object, ok := payload["object"].(string); ok {
			webhookLog.Object = object
		}
	}

	if _, err := h.webhookLogService.LogEvent(c.Context(), webhookLog); err != nil {
		log.WithError(err).Warn("🔔 [WEBHOOK] Không thể lưu webhook log")
	} else {
		log.WithFields(map[string]interface{}{
			"object": webhookLog.Object,
		}).Info("🔔 [WEBHOOK] Đã ghi nhận sự kiện")
	}

	return c.Status(common.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// HandleListLogs liệt kê log webhook mới nhất, phục vụ tra soát
func (h *WebhookHandler) HandleListLogs(c fiber.Ctx) error {
	page, limit := parsePagination(c)
	result, err := h.webhookLogService.ListRecent(c.Context(), page, limit)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, common.StatusOK, result)
}

// parsePagination đọc page/limit từ query, mặc định page=1 limit=20
func parsePagination(c fiber.Ctx) (page int64, limit int64) {
	page = 1
	limit = 20
	if pageStr := c.Query("page", ""); pageStr != "" {
		if parsed, err := strconv.ParseInt(pageStr, 10, 64); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit", ""); limitStr != "" {
		if parsed, err := strconv.ParseInt(limitStr, 10, 64); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	return page, limit
}
