package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"page_pilot/config"
	analyticsmodels "page_pilot/internal/api/analytics/models"
	authmodels "page_pilot/internal/api/auth/models"
	businessmodels "page_pilot/internal/api/business/models"
	draftsmodels "page_pilot/internal/api/drafts/models"
	notificationmodels "page_pilot/internal/api/notification/models"
	schedulemodels "page_pilot/internal/api/schedule/models"
	webhookmodels "page_pilot/internal/api/webhook/models"
	"page_pilot/internal/database"
	"page_pilot/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.BusinessInfo = "business_info"
	global.MongoDB_ColNames.Posts = "posts"
	global.MongoDB_ColNames.Schedules = "schedules"
	global.MongoDB_ColNames.Notifications = "notifications"
	global.MongoDB_ColNames.Recommendations = "recommendations"
	global.MongoDB_ColNames.Analyses = "analyses"
	global.MongoDB_ColNames.WebhookLogs = "webhook_logs"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, hhmm, day_of_week, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo db và các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection. Unique index là nguồn chân lý
	// cho tính duy nhất (email, username, userId của business/schedule).
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BusinessInfo), businessmodels.BusinessInfo{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Posts), draftsmodels.Post{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Schedules), schedulemodels.Schedule{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Notifications), notificationmodels.Notification{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Recommendations), analyticsmodels.Recommendation{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Analyses), analyticsmodels.Analysis{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WebhookLogs), webhookmodels.WebhookLog{})
}
