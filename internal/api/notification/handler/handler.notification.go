package notificationhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "page_pilot/internal/api/base/handler"
	notificationdto "page_pilot/internal/api/notification/dto"
	models "page_pilot/internal/api/notification/models"
	notificationsvc "page_pilot/internal/api/notification/service"
)

// NotificationHandler xử lý các request quản lý thông báo
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, notificationdto.NotificationSendInput, notificationdto.NotificationSendInput]
	notificationService *notificationsvc.NotificationService
}

// NewNotificationHandler tạo instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notificationsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Notification, notificationdto.NotificationSendInput, notificationdto.NotificationSendInput](notificationService)
	return &NotificationHandler{
		BaseHandler:         baseHandler,
		notificationService: notificationService,
	}, nil
}

// HandleSend gửi thông báo mới tới một user
func (h *NotificationHandler) HandleSend(c fiber.Ctx) error {
	var input notificationdto.NotificationSendInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	notification, err := h.notificationService.Send(c.Context(), &input)
	h.HandleCreatedResponse(c, notification, err)
	return nil
}

// HandleListByUser liệt kê thông báo của một user, mới nhất trước
func (h *NotificationHandler) HandleListByUser(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	page, limit := h.ParsePagination(c)
	result, err := h.notificationService.ListByUser(c.Context(), userID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleMarkSeen đánh dấu một thông báo đã xem
func (h *NotificationHandler) HandleMarkSeen(c fiber.Ctx) error {
	var input notificationdto.NotificationMarkSeenInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.notificationService.MarkSeen(c.Context(), input.NotificationID)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleCountUnseen đếm số thông báo chưa xem của một user
func (h *NotificationHandler) HandleCountUnseen(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	count, err := h.notificationService.CountUnseen(c.Context(), userID)
	h.HandleResponse(c, fiber.Map{"unseen": count}, err)
	return nil
}
