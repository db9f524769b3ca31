package scheduledto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduledPostInput đầu vào một slot đăng bài.
type ScheduledPostInput struct {
	DayOfWeek string   `json:"dayOfWeek" bson:"dayOfWeek" validate:"required,day_of_week"`
	TimeOfDay string   `json:"timeOfDay" bson:"timeOfDay" validate:"required,hhmm"`
	Content   string   `json:"content" bson:"content" validate:"required,min=10,max=1000"`
	MediaURLs []string `json:"mediaUrls" bson:"mediaUrls"`
}

// ScheduledCompetitorAnalysisInput đầu vào một slot phân tích đối thủ.
type ScheduledCompetitorAnalysisInput struct {
	DayOfWeek     string   `json:"dayOfWeek" bson:"dayOfWeek" validate:"required,day_of_week"`
	TimeOfDay     string   `json:"timeOfDay" bson:"timeOfDay" validate:"required,hhmm"`
	AnalysisFocus string   `json:"analysisFocus" bson:"analysisFocus" validate:"required,min=10,max=1000"`
	Keywords      []string `json:"keywords" bson:"keywords"`
}

// InteractionAnalysisDateInput đầu vào một slot phân tích tương tác.
type InteractionAnalysisDateInput struct {
	DayOfWeek string `json:"dayOfWeek" bson:"dayOfWeek" validate:"required,day_of_week"`
	TimeOfDay string `json:"timeOfDay" bson:"timeOfDay" validate:"required,hhmm"`
}

// ScheduleCreateInput đầu vào tạo lịch mới cho một user.
type ScheduleCreateInput struct {
	UserID                   primitive.ObjectID                 `json:"userId" bson:"userId" validate:"required"`
	Posts                    []ScheduledPostInput               `json:"posts" bson:"posts" validate:"dive"`
	CompetitorAnalysis       []ScheduledCompetitorAnalysisInput `json:"competitorAnalysis" bson:"competitorAnalysis" validate:"dive"`
	InteractionAnalysisDates []InteractionAnalysisDateInput     `json:"interactionAnalysisDates" bson:"interactionAnalysisDates" validate:"dive"`
}

// ScheduleReplaceInput đầu vào thay thế toàn bộ lịch của một user (PUT).
type ScheduleReplaceInput struct {
	Posts                    []ScheduledPostInput               `json:"posts" bson:"posts" validate:"dive"`
	CompetitorAnalysis       []ScheduledCompetitorAnalysisInput `json:"competitorAnalysis" bson:"competitorAnalysis" validate:"dive"`
	InteractionAnalysisDates []InteractionAnalysisDateInput     `json:"interactionAnalysisDates" bson:"interactionAnalysisDates" validate:"dive"`
}

// SlotUpdateInput đầu vào cập nhật một slot có sẵn. Các field nil giữ nguyên.
// DayOfWeek và TimeOfDay phải đi cùng nhau khi đổi giờ để check trùng slot.
type SlotUpdateInput struct {
	DayOfWeek     *string  `json:"dayOfWeek,omitempty" validate:"omitempty,day_of_week"`
	TimeOfDay     *string  `json:"timeOfDay,omitempty" validate:"omitempty,hhmm"`
	Content       *string  `json:"content,omitempty" validate:"omitempty,min=10,max=1000"`
	AnalysisFocus *string  `json:"analysisFocus,omitempty" validate:"omitempty,min=10,max=1000"`
	MediaURLs     []string `json:"mediaUrls,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
}
