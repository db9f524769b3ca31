package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticsdto "page_pilot/internal/api/analytics/dto"
	models "page_pilot/internal/api/analytics/models"
	analyticssvc "page_pilot/internal/api/analytics/service"
	basehdl "page_pilot/internal/api/base/handler"
)

// AnalyticsHandler xử lý các request khuyến nghị và bản ghi phân tích
type AnalyticsHandler struct {
	*basehdl.BaseHandler[models.Recommendation, analyticsdto.RecommendationCreateInput, analyticsdto.RecommendationCreateInput]
	recommendationService *analyticssvc.RecommendationService
	analysisService       *analyticssvc.AnalysisService
}

// NewAnalyticsHandler tạo instance mới của AnalyticsHandler
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	recommendationService, err := analyticssvc.NewRecommendationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation service: %v", err)
	}
	analysisService, err := analyticssvc.NewAnalysisService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Recommendation, analyticsdto.RecommendationCreateInput, analyticsdto.RecommendationCreateInput](recommendationService)
	return &AnalyticsHandler{
		BaseHandler:           baseHandler,
		recommendationService: recommendationService,
		analysisService:       analysisService,
	}, nil
}

// HandleCreateRecommendation tạo khuyến nghị mới
func (h *AnalyticsHandler) HandleCreateRecommendation(c fiber.Ctx) error {
	var input analyticsdto.RecommendationCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	rec, err := h.recommendationService.Create(c.Context(), &input)
	h.HandleCreatedResponse(c, rec, err)
	return nil
}

// HandleListRecommendations liệt kê khuyến nghị của một user
func (h *AnalyticsHandler) HandleListRecommendations(c fiber.Ctx) error {
	userID, err := h.ParseObjectID(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	page, limit := h.ParsePagination(c)
	result, err := h.recommendationService.ListByUser(c.Context(), userID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleCreateAnalysis tạo bản ghi phân tích mới
func (h *AnalyticsHandler) HandleCreateAnalysis(c fiber.Ctx) error {
	var input analyticsdto.AnalysisCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	analysis, err := h.analysisService.Create(c.Context(), &input)
	h.HandleCreatedResponse(c, analysis, err)
	return nil
}

// HandleListAnalyses liệt kê bản ghi phân tích của một user theo loại
func (h *AnalyticsHandler) HandleListAnalyses(analysisType string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, err := h.ParseObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := h.ParsePagination(c)
		result, err := h.analysisService.ListByUserAndType(c.Context(), userID, analysisType, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	}
}
