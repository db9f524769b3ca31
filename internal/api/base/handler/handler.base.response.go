package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"page_pilot/internal/common"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để hỗ trợ UTF-8 encoding đúng cách.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse chuẩn hóa một error thành JSON response.
// *common.Error giữ nguyên status code và error code; lỗi khác trả về 500.
func ErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
	}
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"status":  "error",
	})
}

// SuccessResponse chuẩn hóa response thành công với status code tùy chọn (200/201).
func SuccessResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	message := common.MsgSuccess
	if statusCode == common.StatusCreated {
		message = common.MsgCreated
	}
	return JSONResponse(c, statusCode, fiber.Map{
		"code":    statusCode,
		"message": message,
		"data":    data,
		"status":  "success",
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Đảm bảo format response thống nhất trong toàn bộ ứng dụng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		_ = ErrorResponse(c, err)
		return
	}
	_ = SuccessResponse(c, common.StatusOK, data)
}

// HandleCreatedResponse như HandleResponse nhưng trả về 201 khi thành công.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCreatedResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		_ = ErrorResponse(c, err)
		return
	}
	_ = SuccessResponse(c, common.StatusCreated, data)
}
