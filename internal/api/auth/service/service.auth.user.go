// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "page_pilot/internal/api/auth/dto"
	models "page_pilot/internal/api/auth/models"
	basesvc "page_pilot/internal/api/base/service"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
	"page_pilot/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới. Mật khẩu được băm bằng bcrypt trước khi lưu.
// Unique index trên email/username là cơ chế bảo vệ cuối cùng chống trùng lặp;
// check exists trước chỉ để trả lỗi sớm.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessConflict, "Email đã được sử dụng", common.StatusConflict, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	user := models.User{
		Username:      input.Username,
		Email:         input.Email,
		HashPassword:  string(hashed),
		AccountStatus: models.AccountStatusActive,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Đăng ký thành công")
	return &created, nil
}

// Login xác thực email/mật khẩu và phát hành JWT access token.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (string, *models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashPassword), []byte(input.Password)); err != nil {
		return "", nil, common.ErrInvalidCredentials
	}

	if user.AccountStatus == models.AccountStatusBanned {
		return "", nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	token, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		global.MongoDB_ServerConfig.AccessTokenExpireDay,
	)
	if err != nil {
		return "", nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "email": user.Email}).Info("Login: Đăng nhập thành công")
	return token, &user, nil
}

// DeleteCascade xóa người dùng kèm toàn bộ dữ liệu thuộc sở hữu của họ.
// Caller chịu trách nhiệm cascade: xóa từng collection con trước rồi mới xóa user.
func (s *UserService) DeleteCascade(ctx context.Context, userID primitive.ObjectID) error {
	ownedCollections := []string{
		global.MongoDB_ColNames.BusinessInfo,
		global.MongoDB_ColNames.Posts,
		global.MongoDB_ColNames.Schedules,
		global.MongoDB_ColNames.Notifications,
		global.MongoDB_ColNames.Recommendations,
		global.MongoDB_ColNames.Analyses,
	}

	filter := bson.M{"userId": userID}
	for _, colName := range ownedCollections {
		collection, exist := global.RegistryCollections.Get(colName)
		if !exist {
			return fmt.Errorf("failed to get %s collection: %v", colName, common.ErrNotFound)
		}
		result, err := collection.DeleteMany(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if result.DeletedCount > 0 {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID.Hex(),
				"collection": colName,
				"deleted":    result.DeletedCount,
			}).Info("DeleteCascade: Đã xóa dữ liệu thuộc user")
		}
	}

	return s.BaseServiceMongoImpl.DeleteById(ctx, userID)
}
