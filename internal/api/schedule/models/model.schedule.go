// Package models - model lịch đăng bài (Schedule) thuộc domain schedule.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tên các danh sách slot trong một Schedule, dùng làm key trong filter Mongo.
const (
	ListPosts                    = "posts"
	ListCompetitorAnalysis       = "competitorAnalysis"
	ListInteractionAnalysisDates = "interactionAnalysisDates"
)

// ScheduledPost một slot đăng bài định kỳ trong tuần.
// Content là prompt để sinh nội dung bài đăng.
type ScheduledPost struct {
	ID        string   `json:"id" bson:"id"`
	DayOfWeek string   `json:"dayOfWeek" bson:"dayOfWeek"`
	TimeOfDay string   `json:"timeOfDay" bson:"timeOfDay"`
	Content   string   `json:"content" bson:"content"`
	MediaURLs []string `json:"mediaUrls" bson:"mediaUrls"`
}

// ScheduledCompetitorAnalysis một slot phân tích đối thủ định kỳ.
type ScheduledCompetitorAnalysis struct {
	ID            string   `json:"id" bson:"id"`
	DayOfWeek     string   `json:"dayOfWeek" bson:"dayOfWeek"`
	TimeOfDay     string   `json:"timeOfDay" bson:"timeOfDay"`
	AnalysisFocus string   `json:"analysisFocus" bson:"analysisFocus"`
	Keywords      []string `json:"keywords" bson:"keywords"`
}

// InteractionAnalysisDate một slot phân tích tương tác định kỳ.
type InteractionAnalysisDate struct {
	ID        string `json:"id" bson:"id"`
	DayOfWeek string `json:"dayOfWeek" bson:"dayOfWeek"`
	TimeOfDay string `json:"timeOfDay" bson:"timeOfDay"`
}

// Schedule lịch hoạt động định kỳ của một user, quan hệ 1:1 với User.
// Mỗi slot định danh bằng UUID, cặp (dayOfWeek, timeOfDay) phải duy nhất
// trong từng danh sách. Unique index trên userId đảm bảo quan hệ 1:1.
type Schedule struct {
	ID                       primitive.ObjectID            `json:"id,omitempty" bson:"_id,omitempty"`
	UserID                   primitive.ObjectID            `json:"userId" bson:"userId" index:"unique"`
	Posts                    []ScheduledPost               `json:"posts" bson:"posts"`
	CompetitorAnalysis       []ScheduledCompetitorAnalysis `json:"competitorAnalysis" bson:"competitorAnalysis"`
	InteractionAnalysisDates []InteractionAnalysisDate     `json:"interactionAnalysisDates" bson:"interactionAnalysisDates"`
	CreatedAt                int64                         `json:"createdAt" bson:"createdAt"`
	UpdatedAt                int64                         `json:"updatedAt" bson:"updatedAt"`
}
