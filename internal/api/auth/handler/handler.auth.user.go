package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "page_pilot/internal/api/auth/dto"
	models "page_pilot/internal/api/auth/models"
	authsvc "page_pilot/internal/api/auth/service"
	basehdl "page_pilot/internal/api/base/handler"
	basesvc "page_pilot/internal/api/base/service"
	"page_pilot/internal/common"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleRegister xử lý đăng ký người dùng mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.UserRegisterInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Register(c.Context(), &input)
	h.HandleCreatedResponse(c, user, err)
	return nil
}

// HandleLogin xử lý đăng nhập, trả về access token kèm thông tin người dùng
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	token, user, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, authdto.UserLoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        user,
	}, nil)
	return nil
}

// HandleGetProfile lấy thông tin người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.BaseServiceMongoImpl.FindOneById(c.Context(), userID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUpdateProfile cập nhật thông tin người dùng đang đăng nhập
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UserChangeInfoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if input.Username == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, nil))
		return nil
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"username": input.Username}}
	updatedUser, err := h.userService.BaseServiceMongoImpl.UpdateById(c.Context(), userID, update)
	h.HandleResponse(c, updatedUser, err)
	return nil
}

// HandleDeleteAccount xóa tài khoản người dùng kèm toàn bộ dữ liệu liên quan
func (h *UserHandler) HandleDeleteAccount(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.userService.DeleteCascade(c.Context(), userID)
	h.HandleResponse(c, nil, err)
	return nil
}
