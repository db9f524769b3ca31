package facebookhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "page_pilot/internal/api/base/handler"
	businesssvc "page_pilot/internal/api/business/service"
	facebookdto "page_pilot/internal/api/facebook/dto"
	facebooksvc "page_pilot/internal/api/facebook/service"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
)

// FacebookHandler xử lý các request tương tác với Meta Graph API.
// Các endpoint nhận access token tùy chọn trong body; bỏ trống thì
// handler dùng page token đã lưu của user đang đăng nhập.
type FacebookHandler struct {
	graphClient     *facebooksvc.GraphClient
	businessService *businesssvc.BusinessInfoService
}

// NewFacebookHandler tạo instance mới của FacebookHandler
func NewFacebookHandler() (*FacebookHandler, error) {
	businessService, err := businesssvc.NewBusinessInfoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business info service: %v", err)
	}
	return &FacebookHandler{
		graphClient:     facebooksvc.NewGraphClient(),
		businessService: businessService,
	}, nil
}

// parseBody parse body và validate input theo struct tag validate
func (h *FacebookHandler) parseBody(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// resolveAccessToken trả về token từ input nếu có, không thì lấy page token
// đã lưu (và giải mã) của user hiện tại.
func (h *FacebookHandler) resolveAccessToken(c fiber.Ctx, accessToken string) (string, error) {
	if accessToken != "" {
		return accessToken, nil
	}
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		return "", err
	}
	_, token, err := h.businessService.GetPageCredentials(c.Context(), userID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// HandleUploadPost đăng bài mới lên page
func (h *FacebookHandler) HandleUploadPost(c fiber.Ctx) error {
	var input facebookdto.UploadPostInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	result, err := h.graphClient.UploadPost(c.Context(), input.PageID, input.Message, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, result)
}

// HandleUpdatePost cập nhật nội dung một bài đã đăng
func (h *FacebookHandler) HandleUpdatePost(c fiber.Ctx) error {
	var input facebookdto.UpdatePostInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	result, err := h.graphClient.UpdatePost(c.Context(), input.PostID, input.Message, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, result)
}

// HandlePageInfo lấy thông tin cơ bản của một page
func (h *FacebookHandler) HandlePageInfo(c fiber.Ctx) error {
	var input facebookdto.PageInfoInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	info, err := h.graphClient.GetPageInfo(c.Context(), input.PageID, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, info)
}

// HandleReplyMessage gửi tin nhắn trả lời tới một user qua Messenger
func (h *FacebookHandler) HandleReplyMessage(c fiber.Ctx) error {
	var input facebookdto.ReplyMessageInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	result, err := h.graphClient.ReplyToMessage(c.Context(), input.PageID, input.PSID, input.ReplyText, input.MessageType, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, result)
}

// HandleReplyComment trả lời một comment trên bài đăng của page
func (h *FacebookHandler) HandleReplyComment(c fiber.Ctx) error {
	var input facebookdto.ReplyCommentInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	result, err := h.graphClient.ReplyToComment(c.Context(), input.CommentID, input.Reply, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, result)
}

// HandleSearchPages tìm page theo từ khóa
func (h *FacebookHandler) HandleSearchPages(c fiber.Ctx) error {
	var input facebookdto.SearchPagesInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	pages, err := h.graphClient.SearchPages(c.Context(), input.Keywords, input.Limit, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, pages)
}

// HandleChatHistory lấy lịch sử một hội thoại
func (h *FacebookHandler) HandleChatHistory(c fiber.Ctx) error {
	var input facebookdto.ChatHistoryInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	messages, err := h.graphClient.GetChatHistory(c.Context(), input.ChatID, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, messages)
}

// HandleFetchPageMessages lấy toàn bộ hội thoại của page, theo hết các trang
func (h *FacebookHandler) HandleFetchPageMessages(c fiber.Ctx) error {
	var input facebookdto.FetchPageDataInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	conversations, err := h.graphClient.FetchPageMessages(c.Context(), input.PageID, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, conversations)
}

// HandleFetchPageFeedInteractions lấy toàn bộ bài đăng kèm comment/reaction của page
func (h *FacebookHandler) HandleFetchPageFeedInteractions(c fiber.Ctx) error {
	var input facebookdto.FetchPageDataInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.resolveAccessToken(c, input.AccessToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	posts, err := h.graphClient.FetchPageFeedInteractions(c.Context(), input.PageID, token)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, posts)
}

// HandleExchangeToken đổi short-lived token lấy long-lived token
func (h *FacebookHandler) HandleExchangeToken(c fiber.Ctx) error {
	var input facebookdto.ExchangeTokenInput
	if err := h.parseBody(c, &input); err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	token, err := h.graphClient.ExchangeToken(c.Context(), input.ShortLivedToken)
	if err != nil {
		return basehdl.ErrorResponse(c, err)
	}
	return basehdl.SuccessResponse(c, fiber.StatusOK, facebookdto.ExchangeTokenResult{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
