package utility

import (
	"page_pilot/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDFromString chuyển đổi chuỗi thành ObjectID với validate.
// Chuỗi không phải 24 ký tự hex trả về common.ErrInvalidID, không bao giờ
// âm thầm trả về NilObjectID.
func ObjectIDFromString(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidID
	}
	return objectID, nil
}

// String2ObjectID chuyển đổi chuỗi thành ObjectID, trả về NilObjectID nếu không hợp lệ.
// Chỉ dùng ở những chỗ đã validate chuỗi từ trước.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
