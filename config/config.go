package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	AppName string `env:"APP_NAME" envDefault:"page_pilot"` // Tên ứng dụng
	Address string `env:"ADDRESS" envDefault:":8080"`       // Địa chỉ server

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Tên cơ sở dữ liệu

	// Auth
	JwtSecret            string `env:"JWT_SECRET,required"`                     // Bí mật ký JWT
	AccessTokenExpireDay int    `env:"ACCESS_TOKEN_EXPIRE_DAYS" envDefault:"7"` // Thời hạn access token (ngày)

	// Facebook Graph API
	GraphAPIVersion    string `env:"GRAPH_API_VERSION" envDefault:"v21.0"`                        // Phiên bản Graph API
	GraphAPIBaseURL    string `env:"GRAPH_API_BASE_URL" envDefault:"https://graph.facebook.com"` // Base URL Graph API
	FacebookAppID      string `env:"FACEBOOK_APP_ID"`                                             // App ID (dùng cho token exchange)
	FacebookAppSecret  string `env:"FACEBOOK_APP_SECRET"`                                         // App secret (dùng cho token exchange)
	WebhookVerifyToken string `env:"WEBHOOK_VERIFY_TOKEN,required"`                               // Token xác minh webhook subscribe

	// Mã hóa page access token khi lưu trữ (32 bytes, hex)
	EncryptionKey string `env:"ENCRYPTION_KEY,required"`

	// CORS / Rate limit
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env, đi dần lên thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
