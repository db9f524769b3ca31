// Package models - model kết quả phân tích thuộc domain analytics.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation khuyến nghị nội dung do pipeline phân tích sinh ra cho một user.
// Result giữ payload tự do của khuyến nghị.
type Recommendation struct {
	ID        primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID     `json:"userId" bson:"userId" index:"single:1"`
	Title     string                 `json:"title" bson:"title"`
	Content   string                 `json:"content" bson:"content"`
	Result    map[string]interface{} `json:"result" bson:"result"`
	CreatedAt int64                  `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64                  `json:"updatedAt" bson:"updatedAt"`
}
