// Package webhooksvc chứa service cho domain Webhook (log).
package webhooksvc

import (
	"context"
	"fmt"

	basemodels "page_pilot/internal/api/base/models"
	basesvc "page_pilot/internal/api/base/service"
	webhookmodels "page_pilot/internal/api/webhook/models"
	"page_pilot/internal/common"
	"page_pilot/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WebhookLogService là cấu trúc chứa các phương thức liên quan đến webhook logs
type WebhookLogService struct {
	*basesvc.BaseServiceMongoImpl[webhookmodels.WebhookLog]
}

// NewWebhookLogService tạo mới WebhookLogService
func NewWebhookLogService() (*WebhookLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WebhookLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get webhook_logs collection: %v", common.ErrNotFound)
	}

	return &WebhookLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[webhookmodels.WebhookLog](collection),
	}, nil
}

// LogEvent ghi nhận một sự kiện webhook. Log luôn được lưu kể cả khi
// payload không parse được (khi đó chỉ có rawBody).
func (s *WebhookLogService) LogEvent(ctx context.Context, log webhookmodels.WebhookLog) (*webhookmodels.WebhookLog, error) {
	result, err := s.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListRecent liệt kê các log mới nhất, phục vụ tra soát sự kiện.
func (s *WebhookLogService) ListRecent(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[webhookmodels.WebhookLog], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{}, page, limit, opts)
}
