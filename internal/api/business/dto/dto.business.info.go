package businessdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "page_pilot/internal/api/business/models"
)

// BusinessInfoCreateInput đầu vào tạo hồ sơ doanh nghiệp.
// Description yêu cầu 50-1000 ký tự để đủ chất lượng cho phân tích nội dung.
type BusinessInfoCreateInput struct {
	UserID             primitive.ObjectID        `json:"userId" bson:"userId" validate:"required"`
	BusinessName       string                    `json:"businessName" bson:"businessName" validate:"required,no_xss"`
	Field              string                    `json:"field" bson:"field" validate:"required,no_xss"`
	Description        string                    `json:"description" bson:"description" validate:"required,min=50,max=1000"`
	Theme              []string                  `json:"theme" bson:"theme"`
	LongTermGoals      []string                  `json:"longTermGoals" bson:"longTermGoals"`
	ShortTermGoals     []string                  `json:"shortTermGoals" bson:"shortTermGoals"`
	TargetAudience     []string                  `json:"targetAudience" bson:"targetAudience"`
	Differentiators    []string                  `json:"differentiators" bson:"differentiators"`
	BusinessKeyWords   []string                  `json:"businessKeyWords" bson:"businessKeyWords"`
	AvailableResources []models.BusinessResource `json:"availableResources,omitempty" bson:"availableResources,omitempty"`
}

// BusinessInfoUpdateInput đầu vào thay thế hồ sơ doanh nghiệp (PUT).
type BusinessInfoUpdateInput struct {
	BusinessName       string                    `json:"businessName" bson:"businessName" validate:"required,no_xss"`
	Field              string                    `json:"field" bson:"field" validate:"required,no_xss"`
	Description        string                    `json:"description" bson:"description" validate:"required,min=50,max=1000"`
	Theme              []string                  `json:"theme" bson:"theme"`
	LongTermGoals      []string                  `json:"longTermGoals" bson:"longTermGoals"`
	ShortTermGoals     []string                  `json:"shortTermGoals" bson:"shortTermGoals"`
	TargetAudience     []string                  `json:"targetAudience" bson:"targetAudience"`
	Differentiators    []string                  `json:"differentiators" bson:"differentiators"`
	BusinessKeyWords   []string                  `json:"businessKeyWords" bson:"businessKeyWords"`
	AvailableResources []models.BusinessResource `json:"availableResources,omitempty" bson:"availableResources,omitempty"`
}

// FacebookCredentialsInput đầu vào cập nhật Facebook Page ID và access token.
type FacebookCredentialsInput struct {
	PageID string `json:"pageId" validate:"required"`
	Token  string `json:"token" validate:"required"`
}

// AddListItemInput đầu vào thêm một giá trị vào field dạng danh sách.
type AddListItemInput struct {
	FieldName string `json:"fieldName" validate:"required,oneof=theme longTermGoals shortTermGoals targetAudience differentiators businessKeyWords"`
	Value     string `json:"value" validate:"required,no_xss"`
}
