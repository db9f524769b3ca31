package draftsdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostCreateInput đầu vào tạo bài nháp mới.
// Content yêu cầu 100-1000 ký tự theo chuẩn nội dung bài đăng.
type PostCreateInput struct {
	UserID   primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	Title    string             `json:"title" bson:"title" validate:"required,min=3,max=100,no_xss"`
	Category string             `json:"category,omitempty" bson:"category,omitempty" validate:"omitempty,no_xss"`
	Content  string             `json:"content" bson:"content" validate:"required,min=100,max=1000"`
}

// PostEditInput đầu vào sửa bài nháp.
type PostEditInput struct {
	NewTitle   string `json:"newTitle" validate:"required,min=3,max=100,no_xss"`
	NewContent string `json:"newContent" validate:"required,min=100,max=1000"`
}

// PostRateInput đầu vào đánh giá bài đăng.
type PostRateInput struct {
	Rate float64 `json:"rate" validate:"gte=0,lte=5"`
}

// PostStatusResult kết quả thay đổi trạng thái bài nháp.
type PostStatusResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
