package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại phân tích được hỗ trợ.
const (
	AnalysisTypeCompetitor  = "competitor"
	AnalysisTypeInteraction = "interaction"
)

// Analysis một bản ghi kết quả phân tích (đối thủ hoặc tương tác) của một user.
type Analysis struct {
	ID           primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID     `json:"userId" bson:"userId" index:"compound:user_type"`
	AnalysisType string                 `json:"analysisType" bson:"analysisType" index:"compound:user_type"`
	PostID       primitive.ObjectID     `json:"postId,omitempty" bson:"postId,omitempty"`
	Result       map[string]interface{} `json:"result" bson:"result"`
	CreatedAt    int64                  `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt    int64                  `json:"updatedAt" bson:"updatedAt"`
}
