// Package models - model cho domain Webhook (log sự kiện từ Meta).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WebhookLog lưu lại nguyên vẹn một sự kiện webhook nhận từ Meta.
// Log chỉ ghi nhận, việc xử lý sự kiện (nếu có) diễn ra ở tầng khác.
type WebhookLog struct {
	ID        primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`                    // ID của log
	Object    string                 `json:"object" bson:"object" index:"single:1"`                // Loại object Meta gửi (thường là "page")
	Payload   map[string]interface{} `json:"payload" bson:"payload"`                               // Body webhook đã parse
	RawBody   string                 `json:"rawBody,omitempty" bson:"rawBody,omitempty"`           // Raw body khi parse thất bại
	IPAddress string                 `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`       // IP nguồn gửi webhook
	CreatedAt int64                  `json:"createdAt" bson:"createdAt" index:"single:-1"`         // Thời điểm nhận (unix milli)
	UpdatedAt int64                  `json:"updatedAt" bson:"updatedAt"`                           // Thời điểm cập nhật (unix milli)
}
