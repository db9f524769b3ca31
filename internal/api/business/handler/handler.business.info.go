package businesshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "page_pilot/internal/api/base/handler"
	businessdto "page_pilot/internal/api/business/dto"
	models "page_pilot/internal/api/business/models"
	businesssvc "page_pilot/internal/api/business/service"
)

// BusinessInfoHandler xử lý các request quản lý hồ sơ doanh nghiệp
type BusinessInfoHandler struct {
	*basehdl.BaseHandler[models.BusinessInfo, businessdto.BusinessInfoCreateInput, businessdto.BusinessInfoUpdateInput]
	businessService *businesssvc.BusinessInfoService
}

// NewBusinessInfoHandler tạo instance mới của BusinessInfoHandler
func NewBusinessInfoHandler() (*BusinessInfoHandler, error) {
	businessService, err := businesssvc.NewBusinessInfoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business info service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.BusinessInfo, businessdto.BusinessInfoCreateInput, businessdto.BusinessInfoUpdateInput](businessService)
	return &BusinessInfoHandler{
		BaseHandler:     baseHandler,
		businessService: businessService,
	}, nil
}

// HandleGetByUserID lấy hồ sơ doanh nghiệp theo userId trên URL
func (h *BusinessInfoHandler) HandleGetByUserID(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	info, err := h.businessService.GetByUserID(c.Context(), userID)
	h.HandleResponse(c, info, err)
	return nil
}

// HandleCreate tạo hồ sơ doanh nghiệp mới
func (h *BusinessInfoHandler) HandleCreate(c fiber.Ctx) error {
	var input businessdto.BusinessInfoCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	info, err := h.businessService.Create(c.Context(), &input)
	h.HandleCreatedResponse(c, info, err)
	return nil
}

// HandleReplace thay thế toàn bộ hồ sơ doanh nghiệp của một user
func (h *BusinessInfoHandler) HandleReplace(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input businessdto.BusinessInfoUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.businessService.ReplaceByUserID(c.Context(), userID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleUpdateFacebookCredentials cập nhật Facebook Page ID và access token của một user
func (h *BusinessInfoHandler) HandleUpdateFacebookCredentials(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input businessdto.FacebookCredentialsInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.businessService.UpdateFacebookCredentials(c.Context(), userID, input.PageID, input.Token)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleDeleteByUserID xóa hồ sơ doanh nghiệp của một user
func (h *BusinessInfoHandler) HandleDeleteByUserID(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.businessService.DeleteByUserID(c.Context(), userID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleAddListItem thêm một giá trị vào field dạng danh sách của hồ sơ
func (h *BusinessInfoHandler) HandleAddListItem(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input businessdto.AddListItemInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.businessService.AddToListField(c.Context(), userID, input.FieldName, input.Value)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleListByField liệt kê doanh nghiệp theo lĩnh vực với phân trang
func (h *BusinessInfoHandler) HandleListByField(c fiber.Ctx) error {
	field := c.Query("field", "")
	page, limit := h.ParsePagination(c)
	if field == "" {
		data, err := h.BaseService.FindWithPagination(c.Context(), nil, page, limit, nil)
		h.HandleResponse(c, data, err)
		return nil
	}
	data, err := h.businessService.ListByField(c.Context(), field, page, limit)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleSearchByKeyword tìm doanh nghiệp theo keyword trong businessKeyWords
func (h *BusinessInfoHandler) HandleSearchByKeyword(c fiber.Ctx) error {
	keyword := c.Query("keyword", "")
	page, limit := h.ParsePagination(c)
	data, err := h.businessService.SearchByKeyword(c.Context(), keyword, page, limit)
	h.HandleResponse(c, data, err)
	return nil
}
