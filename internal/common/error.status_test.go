package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewUpstreamError_GiuNguyenStatus(t *testing.T) {
	body := map[string]interface{}{"error": map[string]interface{}{"code": 190}}
	err := NewUpstreamError(401, body)

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("NewUpstreamError phải trả về *Error, có: %T", err)
	}
	if appErr.StatusCode != 401 {
		t.Errorf("status upstream phải được giữ nguyên, có: %d", appErr.StatusCode)
	}
	if appErr.Code.Code != ErrCodeUpstream.Code {
		t.Errorf("mã lỗi phải là %s, có: %s", ErrCodeUpstream.Code, appErr.Code.Code)
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("mongo.ErrNoDocuments phải chuyển thành ErrNotFound, có: %v", err)
	}
}

func TestConvertMongoError_GiuNguyenLoiDaPhanLoai(t *testing.T) {
	original := NewError(ErrCodeBusinessConflict, "Lịch đã tồn tại", StatusConflict, nil)
	converted := ConvertMongoError(original)
	if converted != original {
		t.Errorf("lỗi đã phân loại phải được giữ nguyên, có: %v", converted)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if ConvertMongoError(nil) != nil {
		t.Error("nil phải cho nil")
	}
}

func TestConvertMongoError_LoiLa(t *testing.T) {
	err := ConvertMongoError(fmt.Errorf("loi khong xac dinh"))
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi lạ phải được bọc thành *Error, có: %T", err)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi lạ phải map về 500, có: %d", appErr.StatusCode)
	}
}

func TestNewScheduleConflictError(t *testing.T) {
	err := NewScheduleConflictError("posts", "monday", "09:00")
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("phải trả về *Error, có: %T", err)
	}
	if appErr.StatusCode != StatusConflict {
		t.Errorf("trùng khung giờ phải là 409, có: %d", appErr.StatusCode)
	}
}
