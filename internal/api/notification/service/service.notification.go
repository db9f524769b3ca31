// Package notificationsvc - service thông báo (Notification).
package notificationsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "page_pilot/internal/api/base/models"
	basesvc "page_pilot/internal/api/base/service"
	notificationdto "page_pilot/internal/api/notification/dto"
	models "page_pilot/internal/api/notification/models"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
)

// NotificationService là cấu trúc chứa các phương thức liên quan đến thông báo
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](collection),
	}, nil
}

// Send tạo thông báo mới cho một user.
func (s *NotificationService) Send(ctx context.Context, input *notificationdto.NotificationSendInput) (*models.Notification, error) {
	notification := models.Notification{
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
		Seen:    false,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByUser liệt kê thông báo của một user, mới nhất trước.
func (s *NotificationService) ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Notification], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"userId": userID}, page, limit, opts)
}

// MarkSeen đánh dấu một thông báo đã xem. Trả về ErrNotFound khi không có
// thông báo (matched = 0); đánh dấu lại thông báo đã xem vẫn là thành công.
func (s *NotificationService) MarkSeen(ctx context.Context, notificationID primitive.ObjectID) (*notificationdto.NotificationMarkSeenResult, error) {
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"_id": notificationID}, bson.M{
		"$set": bson.M{"seen": true},
	})
	if err != nil {
		return nil, err
	}
	if counts.Matched == 0 {
		return nil, common.ErrNotFound
	}
	return &notificationdto.NotificationMarkSeenResult{
		Matched:  counts.Matched,
		Modified: counts.Modified,
	}, nil
}

// CountUnseen đếm số thông báo chưa xem của một user.
func (s *NotificationService) CountUnseen(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"userId": userID, "seen": false})
}
