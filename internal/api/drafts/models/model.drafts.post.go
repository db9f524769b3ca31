// Package models - model bài đăng nháp (Post) thuộc domain drafts.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái vòng đời của một bài đăng.
const (
	PostStatusDraft    = "draft"
	PostStatusAccepted = "accepted"
	PostStatusRejected = "rejected"
)

// Post bài đăng do hệ thống sinh ra, đi qua vòng đời draft -> accepted/rejected.
// UpdatedContent giữ bản sửa của người dùng, Content giữ bản gốc.
type Post struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" index:"compound:user_status"`
	Status         string             `json:"status" bson:"status" index:"compound:user_status" default:"draft"`
	Title          string             `json:"title" bson:"title"`
	Category       string             `json:"category,omitempty" bson:"category,omitempty"`
	Content        string             `json:"content" bson:"content"`
	UpdatedContent string             `json:"updatedContent,omitempty" bson:"updatedContent,omitempty"`
	UserRate       float64            `json:"userRate" bson:"userRate"`
	Comments       []string           `json:"comments" bson:"comments"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
