package schedulehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "page_pilot/internal/api/base/handler"
	models "page_pilot/internal/api/schedule/models"
	scheduledto "page_pilot/internal/api/schedule/dto"
	schedulesvc "page_pilot/internal/api/schedule/service"
	"page_pilot/internal/common"
)

// ScheduleHandler xử lý các request quản lý lịch hoạt động
type ScheduleHandler struct {
	*basehdl.BaseHandler[models.Schedule, scheduledto.ScheduleCreateInput, scheduledto.ScheduleReplaceInput]
	scheduleService *schedulesvc.ScheduleService
}

// NewScheduleHandler tạo instance mới của ScheduleHandler
func NewScheduleHandler() (*ScheduleHandler, error) {
	scheduleService, err := schedulesvc.NewScheduleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Schedule, scheduledto.ScheduleCreateInput, scheduledto.ScheduleReplaceInput](scheduleService)
	return &ScheduleHandler{
		BaseHandler:     baseHandler,
		scheduleService: scheduleService,
	}, nil
}

// HandleCreate tạo lịch mới cho một user
func (h *ScheduleHandler) HandleCreate(c fiber.Ctx) error {
	var input scheduledto.ScheduleCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	schedule, err := h.scheduleService.Create(c.Context(), &input)
	h.HandleCreatedResponse(c, schedule, err)
	return nil
}

// HandleGetByUserID lấy lịch của một user
func (h *ScheduleHandler) HandleGetByUserID(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	schedule, err := h.scheduleService.GetByUserID(c.Context(), userID)
	h.HandleResponse(c, schedule, err)
	return nil
}

// HandleReplace thay thế toàn bộ lịch của một user
func (h *ScheduleHandler) HandleReplace(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input scheduledto.ScheduleReplaceInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	schedule, err := h.scheduleService.ReplaceByUserID(c.Context(), userID, &input)
	h.HandleResponse(c, schedule, err)
	return nil
}

// HandleDeleteByUserID xóa lịch của một user
func (h *ScheduleHandler) HandleDeleteByUserID(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.scheduleService.DeleteByUserID(c.Context(), userID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleAddPost thêm một slot đăng bài vào lịch
func (h *ScheduleHandler) HandleAddPost(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input scheduledto.ScheduledPostInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	post, err := h.scheduleService.AddPost(c.Context(), userID, &input)
	h.HandleCreatedResponse(c, post, err)
	return nil
}

// HandleAddCompetitorAnalysis thêm một slot phân tích đối thủ vào lịch
func (h *ScheduleHandler) HandleAddCompetitorAnalysis(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input scheduledto.ScheduledCompetitorAnalysisInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	analysis, err := h.scheduleService.AddCompetitorAnalysis(c.Context(), userID, &input)
	h.HandleCreatedResponse(c, analysis, err)
	return nil
}

// HandleAddInteractionDate thêm một slot phân tích tương tác vào lịch
func (h *ScheduleHandler) HandleAddInteractionDate(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input scheduledto.InteractionAnalysisDateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	date, err := h.scheduleService.AddInteractionDate(c.Context(), userID, &input)
	h.HandleCreatedResponse(c, date, err)
	return nil
}

// HandleUpdateSlot cập nhật một slot trong danh sách listName
func (h *ScheduleHandler) HandleUpdateSlot(listName string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, err := h.ParseObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		itemID := c.Params("itemId")
		if itemID == "" {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		var input scheduledto.SlotUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.scheduleService.UpdateSlot(c.Context(), userID, listName, itemID, &input)
		h.HandleResponse(c, nil, err)
		return nil
	}
}

// HandleRemoveSlot gỡ một slot khỏi danh sách listName
func (h *ScheduleHandler) HandleRemoveSlot(listName string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, err := h.ParseObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		itemID := c.Params("itemId")
		if itemID == "" {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		err = h.scheduleService.RemoveSlot(c.Context(), userID, listName, itemID)
		h.HandleResponse(c, nil, err)
		return nil
	}
}
