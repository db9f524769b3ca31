// Package models - model hồ sơ doanh nghiệp (BusinessInfo) thuộc domain business.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessResource mô tả một nguồn lực sẵn có của doanh nghiệp.
type BusinessResource struct {
	Type        string `json:"type" bson:"type"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// BusinessInfo hồ sơ doanh nghiệp của một người dùng, quan hệ 1:1 với User.
// Unique index trên userId là cơ chế đảm bảo quan hệ 1:1; check exists
// trước khi insert chỉ để trả lỗi sớm.
// FacebookPageAccessToken được mã hóa AES-GCM trước khi lưu, không bao giờ trả về client.
type BusinessInfo struct {
	ID                      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID                  primitive.ObjectID `json:"userId" bson:"userId" index:"unique"`
	BusinessName            string             `json:"businessName" bson:"businessName"`
	Field                   string             `json:"field" bson:"field" index:"single:1"`
	Description             string             `json:"description" bson:"description"`
	Theme                   []string           `json:"theme" bson:"theme"`
	LongTermGoals           []string           `json:"longTermGoals" bson:"longTermGoals"`
	ShortTermGoals          []string           `json:"shortTermGoals" bson:"shortTermGoals"`
	TargetAudience          []string           `json:"targetAudience" bson:"targetAudience"`
	Differentiators         []string           `json:"differentiators" bson:"differentiators"`
	BusinessKeyWords        []string           `json:"businessKeyWords" bson:"businessKeyWords"`
	AvailableResources      []BusinessResource `json:"availableResources,omitempty" bson:"availableResources,omitempty"`
	FacebookPageID          string             `json:"facebookPageId,omitempty" bson:"facebookPageId,omitempty" index:"unique,sparse"`
	FacebookPageAccessToken string             `json:"-" bson:"facebookPageAccessToken,omitempty"`
	CreatedAt               int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt               int64              `json:"updatedAt" bson:"updatedAt"`
}
