// Package businesssvc - service hồ sơ doanh nghiệp (BusinessInfo).
package businesssvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "page_pilot/internal/api/base/models"
	basesvc "page_pilot/internal/api/base/service"
	businessdto "page_pilot/internal/api/business/dto"
	models "page_pilot/internal/api/business/models"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
	"page_pilot/internal/utility"
)

// BusinessInfoService là cấu trúc chứa các phương thức liên quan đến hồ sơ doanh nghiệp
type BusinessInfoService struct {
	*basesvc.BaseServiceMongoImpl[models.BusinessInfo]
	tokenCipher *utility.TokenCipher
}

// NewBusinessInfoService tạo mới BusinessInfoService
func NewBusinessInfoService() (*BusinessInfoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BusinessInfo)
	if !exist {
		return nil, fmt.Errorf("failed to get business_info collection: %v", common.ErrNotFound)
	}
	cipher, err := utility.NewTokenCipher(global.MongoDB_ServerConfig.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cipher: %w", err)
	}
	return &BusinessInfoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BusinessInfo](collection),
		tokenCipher:          cipher,
	}, nil
}

// GetByUserID lấy hồ sơ doanh nghiệp theo userId (quan hệ 1:1 với User).
func (s *BusinessInfoService) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.BusinessInfo, error) {
	info, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Create tạo hồ sơ doanh nghiệp mới cho một user.
// Unique index trên userId là cơ chế bảo vệ cuối cùng cho quan hệ 1:1.
func (s *BusinessInfoService) Create(ctx context.Context, input *businessdto.BusinessInfoCreateInput) (*models.BusinessInfo, error) {
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"userId": input.UserID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessConflict, "Hồ sơ doanh nghiệp đã tồn tại cho user này", common.StatusConflict, nil)
	}

	info := models.BusinessInfo{
		UserID:             input.UserID,
		BusinessName:       input.BusinessName,
		Field:              input.Field,
		Description:        input.Description,
		Theme:              input.Theme,
		LongTermGoals:      input.LongTermGoals,
		ShortTermGoals:     input.ShortTermGoals,
		TargetAudience:     input.TargetAudience,
		Differentiators:    input.Differentiators,
		BusinessKeyWords:   input.BusinessKeyWords,
		AvailableResources: input.AvailableResources,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, info)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": input.UserID.Hex(), "business_name": created.BusinessName}).Info("Create: Đã tạo hồ sơ doanh nghiệp")
	return &created, nil
}

// ReplaceByUserID thay thế toàn bộ hồ sơ doanh nghiệp của một user (PUT).
// Trả về ErrNotFound khi user chưa có hồ sơ (matched = 0).
func (s *BusinessInfoService) ReplaceByUserID(ctx context.Context, userID primitive.ObjectID, input *businessdto.BusinessInfoUpdateInput) error {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"businessName":       input.BusinessName,
			"field":              input.Field,
			"description":        input.Description,
			"theme":              input.Theme,
			"longTermGoals":      input.LongTermGoals,
			"shortTermGoals":     input.ShortTermGoals,
			"targetAudience":     input.TargetAudience,
			"differentiators":    input.Differentiators,
			"businessKeyWords":   input.BusinessKeyWords,
			"availableResources": input.AvailableResources,
		},
	}
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return err
	}
	if counts.Matched == 0 {
		return common.ErrNotFound
	}
	return nil
}

// UpdateFacebookCredentials cập nhật Facebook Page ID và access token.
// Token được mã hóa AES-GCM trước khi lưu.
func (s *BusinessInfoService) UpdateFacebookCredentials(ctx context.Context, userID primitive.ObjectID, pageID string, token string) error {
	encrypted, err := s.tokenCipher.Encrypt(token)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"facebookPageId":          pageID,
			"facebookPageAccessToken": encrypted,
		},
	}
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return err
	}
	if counts.Matched == 0 {
		return common.ErrNotFound
	}

	logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "page_id": pageID}).Info("UpdateFacebookCredentials: Đã cập nhật thông tin Facebook Page")
	return nil
}

// GetPageCredentials trả về Facebook Page ID và access token đã giải mã của một user.
// Dùng nội bộ cho các thao tác gọi Graph API, không bao giờ trả token về client.
func (s *BusinessInfoService) GetPageCredentials(ctx context.Context, userID primitive.ObjectID) (pageID string, accessToken string, err error) {
	info, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if info.FacebookPageID == "" || info.FacebookPageAccessToken == "" {
		return "", "", common.NewError(common.ErrCodeBusinessState, "User chưa liên kết Facebook Page", common.StatusBadRequest, nil)
	}
	token, err := s.tokenCipher.Decrypt(info.FacebookPageAccessToken)
	if err != nil {
		return "", "", common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}
	return info.FacebookPageID, token, nil
}

// AddToListField thêm một giá trị vào field dạng danh sách, dùng $addToSet để tránh trùng.
func (s *BusinessInfoService) AddToListField(ctx context.Context, userID primitive.ObjectID, fieldName string, value string) error {
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"userId": userID}, bson.M{
		"$addToSet": bson.M{fieldName: value},
	})
	if err != nil {
		return err
	}
	if counts.Matched == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteByUserID xóa hồ sơ doanh nghiệp của một user.
func (s *BusinessInfoService) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.BaseServiceMongoImpl.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// ListByField liệt kê các doanh nghiệp thuộc một lĩnh vực, có phân trang.
func (s *BusinessInfoService) ListByField(ctx context.Context, field string, page, limit int64) (*basemodels.PaginateResult[models.BusinessInfo], error) {
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"field": field}, page, limit, nil)
}

// SearchByKeyword tìm doanh nghiệp theo keyword trong businessKeyWords (không phân biệt hoa thường).
func (s *BusinessInfoService) SearchByKeyword(ctx context.Context, keyword string, page, limit int64) (*basemodels.PaginateResult[models.BusinessInfo], error) {
	filter := bson.M{"businessKeyWords": bson.M{"$regex": keyword, "$options": "i"}}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}
