// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái tài khoản người dùng.
const (
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
	AccountStatusBanned   = "banned"
)

// User định nghĩa mô hình người dùng.
// FacebookPageID liên kết tài khoản với một Facebook Page qua Meta Graph API,
// unique+sparse để nhiều user chưa liên kết không đụng index.
type User struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username" index:"unique"`
	Email          string             `json:"email" bson:"email" index:"unique"`
	HashPassword   string             `json:"-" bson:"hashPassword"`
	AccountStatus  string             `json:"accountStatus" bson:"accountStatus" index:"single:1" default:"active"`
	FacebookPageID string             `json:"facebookPageId,omitempty" bson:"facebookPageId,omitempty" index:"unique,sparse"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
