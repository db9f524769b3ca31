// Package models - các cấu trúc dữ liệu trả về từ Meta Graph API.
package models

// PageInfo thông tin cơ bản của một Facebook Page.
type PageInfo struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	About        string                   `json:"about,omitempty"`
	Description  string                   `json:"description,omitempty"`
	Category     string                   `json:"category,omitempty"`
	CategoryList []map[string]interface{} `json:"category_list,omitempty"`
	Website      string                   `json:"website,omitempty"`
}

// PageSummary kết quả rút gọn khi tìm kiếm page theo keyword.
type PageSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// ChatMessage một tin nhắn đã định dạng lại từ lịch sử hội thoại.
type ChatMessage struct {
	SenderID    string `json:"senderId"`
	SenderName  string `json:"senderName"`
	RecipientID string `json:"recipientId,omitempty"`
	Message     string `json:"message"`
	CreatedTime string `json:"createdTime"`
}
