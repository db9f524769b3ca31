package analyticsdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendationCreateInput đầu vào tạo khuyến nghị mới.
type RecommendationCreateInput struct {
	UserID  primitive.ObjectID     `json:"userId" bson:"userId" validate:"required"`
	Title   string                 `json:"title" bson:"title" validate:"required,min=10,max=100,no_xss"`
	Content string                 `json:"content" bson:"content" validate:"required,min=10"`
	Result  map[string]interface{} `json:"result" bson:"result" validate:"required"`
}

// AnalysisCreateInput đầu vào tạo bản ghi phân tích mới.
type AnalysisCreateInput struct {
	UserID       primitive.ObjectID     `json:"userId" bson:"userId" validate:"required"`
	AnalysisType string                 `json:"analysisType" bson:"analysisType" validate:"required,oneof=competitor interaction"`
	PostID       primitive.ObjectID     `json:"postId,omitempty" bson:"postId,omitempty"`
	Result       map[string]interface{} `json:"result" bson:"result" validate:"required"`
}
