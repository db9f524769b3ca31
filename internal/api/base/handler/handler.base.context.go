package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"page_pilot/internal/common"
	"page_pilot/internal/utility"
)

// CurrentUserID lấy user_id do AuthMiddleware lưu vào context.
// Trả về lỗi 401 nếu request chưa qua xác thực.
func CurrentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuthToken, "User not authenticated", common.StatusUnauthorized, nil)
	}
	idStr, ok := userID.(string)
	if !ok || idStr == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuthToken, "User not authenticated", common.StatusUnauthorized, nil)
	}
	return utility.ObjectIDFromString(idStr)
}
