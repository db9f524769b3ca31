// Package draftssvc - service bài đăng nháp (Post).
package draftssvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "page_pilot/internal/api/base/models"
	basesvc "page_pilot/internal/api/base/service"
	draftsdto "page_pilot/internal/api/drafts/dto"
	models "page_pilot/internal/api/drafts/models"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
)

// PostService là cấu trúc chứa các phương thức liên quan đến bài đăng nháp
type PostService struct {
	*basesvc.BaseServiceMongoImpl[models.Post]
}

// NewPostService tạo mới PostService
func NewPostService() (*PostService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Posts)
	if !exist {
		return nil, fmt.Errorf("failed to get posts collection: %v", common.ErrNotFound)
	}
	return &PostService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Post](collection),
	}, nil
}

// Create tạo bài nháp mới với trạng thái draft.
func (s *PostService) Create(ctx context.Context, input *draftsdto.PostCreateInput) (*models.Post, error) {
	post := models.Post{
		UserID:   input.UserID,
		Title:    input.Title,
		Category: input.Category,
		Content:  input.Content,
		Status:   models.PostStatusDraft,
		Comments: []string{},
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"post_id": created.ID.Hex(), "user_id": input.UserID.Hex()}).Info("Create: Đã tạo bài nháp")
	return &created, nil
}

// GetDraftByID lấy một bài nháp theo ID. Bài không ở trạng thái draft coi như không tồn tại.
func (s *PostService) GetDraftByID(ctx context.Context, postID primitive.ObjectID) (*models.Post, error) {
	post, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"_id": postID, "status": models.PostStatusDraft}, nil)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByUserAndStatus liệt kê bài đăng của một user theo trạng thái, mới nhất trước.
func (s *PostService) ListByUserAndStatus(ctx context.Context, userID primitive.ObjectID, status string, page, limit int64) (*basemodels.PaginateResult[models.Post], error) {
	filter := bson.M{"userId": userID, "status": status}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, opts)
}

// Edit sửa title/content của một bài nháp. Bản sửa được lưu vào updatedContent,
// content gốc giữ nguyên. Chỉ bài ở trạng thái draft mới sửa được.
func (s *PostService) Edit(ctx context.Context, postID primitive.ObjectID, input *draftsdto.PostEditInput) (*models.Post, error) {
	filter := bson.M{"_id": postID, "status": models.PostStatusDraft}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"title":          input.NewTitle,
			"updatedContent": input.NewContent,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateOne(ctx, filter, update, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangeStatus chuyển trạng thái một bài nháp sang accepted/rejected.
// Filter kèm status=draft để thao tác thất bại (404) khi bài đã được duyệt trước đó.
func (s *PostService) ChangeStatus(ctx context.Context, postID primitive.ObjectID, newStatus string) error {
	if newStatus != models.PostStatusAccepted && newStatus != models.PostStatusRejected {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, nil)
	}
	filter := bson.M{"_id": postID, "status": models.PostStatusDraft}
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, filter, bson.M{
		"$set": bson.M{"status": newStatus},
	})
	if err != nil {
		return err
	}
	if counts.Matched == 0 {
		return common.ErrNotFound
	}
	logrus.WithFields(logrus.Fields{"post_id": postID.Hex(), "status": newStatus}).Info("ChangeStatus: Đã chuyển trạng thái bài nháp")
	return nil
}

// Rate lưu đánh giá của người dùng cho một bài đăng.
func (s *PostService) Rate(ctx context.Context, postID primitive.ObjectID, rate float64) error {
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"_id": postID}, bson.M{
		"$set": bson.M{"userRate": rate},
	})
	if err != nil {
		return err
	}
	if counts.Matched == 0 {
		return common.ErrNotFound
	}
	return nil
}
