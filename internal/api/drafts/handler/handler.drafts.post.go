package draftshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "page_pilot/internal/api/base/handler"
	draftsdto "page_pilot/internal/api/drafts/dto"
	models "page_pilot/internal/api/drafts/models"
	draftssvc "page_pilot/internal/api/drafts/service"
)

// PostHandler xử lý các request quản lý bài đăng nháp
type PostHandler struct {
	*basehdl.BaseHandler[models.Post, draftsdto.PostCreateInput, draftsdto.PostEditInput]
	postService *draftssvc.PostService
}

// NewPostHandler tạo instance mới của PostHandler
func NewPostHandler() (*PostHandler, error) {
	postService, err := draftssvc.NewPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Post, draftsdto.PostCreateInput, draftsdto.PostEditInput](postService)
	return &PostHandler{
		BaseHandler: baseHandler,
		postService: postService,
	}, nil
}

// HandleCreate tạo bài nháp mới
func (h *PostHandler) HandleCreate(c fiber.Ctx) error {
	var input draftsdto.PostCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	post, err := h.postService.Create(c.Context(), &input)
	h.HandleCreatedResponse(c, post, err)
	return nil
}

// HandleGetDraft lấy một bài nháp theo ID
func (h *PostHandler) HandleGetDraft(c fiber.Ctx) error {
	postID, err := h.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	post, err := h.postService.GetDraftByID(c.Context(), postID)
	h.HandleResponse(c, post, err)
	return nil
}

// HandleListByStatus liệt kê bài đăng của một user theo trạng thái
func (h *PostHandler) HandleListByStatus(status string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, err := h.ParseObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := h.ParsePagination(c)
		result, err := h.postService.ListByUserAndStatus(c.Context(), userID, status, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	}
}

// HandleEdit sửa title/content của một bài nháp
func (h *PostHandler) HandleEdit(c fiber.Ctx) error {
	postID, err := h.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input draftsdto.PostEditInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	post, err := h.postService.Edit(c.Context(), postID, &input)
	h.HandleResponse(c, post, err)
	return nil
}

// HandleChangeStatus chuyển trạng thái một bài nháp sang accepted/rejected
func (h *PostHandler) HandleChangeStatus(newStatus string) fiber.Handler {
	return func(c fiber.Ctx) error {
		postID, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.postService.ChangeStatus(c.Context(), postID, newStatus); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, draftsdto.PostStatusResult{ID: postID.Hex(), Status: newStatus}, nil)
		return nil
	}
}

// HandleRate lưu đánh giá của người dùng cho một bài đăng
func (h *PostHandler) HandleRate(c fiber.Ctx) error {
	postID, err := h.ParseObjectID(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input draftsdto.PostRateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.postService.Rate(c.Context(), postID, input.Rate)
	h.HandleResponse(c, nil, err)
	return nil
}
