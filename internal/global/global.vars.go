package global

import (
	"page_pilot/config"
	"page_pilot/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users           string // Tên collection cho người dùng
	BusinessInfo    string // Tên collection cho hồ sơ doanh nghiệp
	Posts           string // Tên collection cho bài viết nháp
	Schedules       string // Tên collection cho lịch đăng bài
	Notifications   string // Tên collection cho thông báo
	Recommendations string // Tên collection cho đề xuất nội dung
	Analyses        string // Tên collection cho kết quả phân tích
	WebhookLogs     string // Tên collection cho log sự kiện webhook
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                             // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
