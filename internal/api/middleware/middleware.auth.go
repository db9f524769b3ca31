package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"page_pilot/internal/common"
	"page_pilot/internal/global"
	"page_pilot/internal/logger"
	"page_pilot/internal/utility"
)

// AuthMiddleware middleware xác thực JWT cho Fiber.
// Token hợp lệ → lưu user_id vào context cho handler phía sau.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Xác thực chữ ký và thời hạn
		claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}
