// Package analyticssvc - service khuyến nghị và bản ghi phân tích.
package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	analyticsdto "page_pilot/internal/api/analytics/dto"
	models "page_pilot/internal/api/analytics/models"
	basemodels "page_pilot/internal/api/base/models"
	basesvc "page_pilot/internal/api/base/service"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
)

// newestFirst sort mặc định cho các danh sách kết quả phân tích.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// RecommendationService là cấu trúc chứa các phương thức liên quan đến khuyến nghị
type RecommendationService struct {
	*basesvc.BaseServiceMongoImpl[models.Recommendation]
}

// NewRecommendationService tạo mới RecommendationService
func NewRecommendationService() (*RecommendationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Recommendations)
	if !exist {
		return nil, fmt.Errorf("failed to get recommendations collection: %v", common.ErrNotFound)
	}
	return &RecommendationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Recommendation](collection),
	}, nil
}

// Create tạo khuyến nghị mới cho một user.
func (s *RecommendationService) Create(ctx context.Context, input *analyticsdto.RecommendationCreateInput) (*models.Recommendation, error) {
	rec := models.Recommendation{
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
		Result:  input.Result,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByUser liệt kê khuyến nghị của một user, mới nhất trước.
func (s *RecommendationService) ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Recommendation], error) {
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"userId": userID}, page, limit, newestFirst())
}

// AnalysisService là cấu trúc chứa các phương thức liên quan đến bản ghi phân tích
type AnalysisService struct {
	*basesvc.BaseServiceMongoImpl[models.Analysis]
}

// NewAnalysisService tạo mới AnalysisService
func NewAnalysisService() (*AnalysisService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Analyses)
	if !exist {
		return nil, fmt.Errorf("failed to get analyses collection: %v", common.ErrNotFound)
	}
	return &AnalysisService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Analysis](collection),
	}, nil
}

// Create tạo bản ghi phân tích mới.
func (s *AnalysisService) Create(ctx context.Context, input *analyticsdto.AnalysisCreateInput) (*models.Analysis, error) {
	analysis := models.Analysis{
		UserID:       input.UserID,
		AnalysisType: input.AnalysisType,
		PostID:       input.PostID,
		Result:       input.Result,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, analysis)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByUserAndType liệt kê bản ghi phân tích của một user theo loại, mới nhất trước.
func (s *AnalysisService) ListByUserAndType(ctx context.Context, userID primitive.ObjectID, analysisType string, page, limit int64) (*basemodels.PaginateResult[models.Analysis], error) {
	filter := bson.M{"userId": userID, "analysisType": analysisType}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, newestFirst())
}
