// Package models - model thông báo (Notification) thuộc domain notification.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification thông báo gửi tới người dùng, thường do pipeline phân tích sinh ra.
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Seen      bool               `json:"seen" bson:"seen"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
