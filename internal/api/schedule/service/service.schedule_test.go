// Package schedulesvc - Test filter kiểm tra trùng khung giờ trong lịch.
package schedulesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "page_pilot/internal/api/schedule/models"
)

func TestBuildSlotConflictFilter_KhongLoaiTru(t *testing.T) {
	userID := primitive.NewObjectID()
	filter := BuildSlotConflictFilter(userID, models.ListPosts, "monday", "09:00", "")

	if filter["userId"] != userID {
		t.Errorf("filter thiếu userId, có: %v", filter["userId"])
	}

	elemMatch, ok := filter[models.ListPosts].(bson.M)["$elemMatch"].(bson.M)
	if !ok {
		t.Fatalf("filter phải dùng $elemMatch trên %s, có: %v", models.ListPosts, filter)
	}
	if elemMatch["dayOfWeek"] != "monday" || elemMatch["timeOfDay"] != "09:00" {
		t.Errorf("$elemMatch phải chứa dayOfWeek và timeOfDay, có: %v", elemMatch)
	}
	if _, hasNe := elemMatch["id"]; hasNe {
		t.Error("không có excludeID thì $elemMatch không được chứa điều kiện id")
	}
}

func TestBuildSlotConflictFilter_LoaiTruChinhNo(t *testing.T) {
	userID := primitive.NewObjectID()
	filter := BuildSlotConflictFilter(userID, models.ListCompetitorAnalysis, "friday", "18:30", "slot-123")

	elemMatch, ok := filter[models.ListCompetitorAnalysis].(bson.M)["$elemMatch"].(bson.M)
	if !ok {
		t.Fatalf("filter phải dùng $elemMatch, có: %v", filter)
	}

	// Điều kiện loại trừ phải nằm TRONG $elemMatch để áp dụng trên cùng
	// một phần tử với dayOfWeek/timeOfDay. Đặt ngoài sẽ match nhầm khi
	// list có nhiều phần tử.
	idCond, ok := elemMatch["id"].(bson.M)
	if !ok {
		t.Fatalf("điều kiện loại trừ id phải nằm trong $elemMatch, có: %v", elemMatch)
	}
	if idCond["$ne"] != "slot-123" {
		t.Errorf("điều kiện id phải là $ne slot-123, có: %v", idCond)
	}
}

func TestValidateUniqueSlots_TrungKhungGio(t *testing.T) {
	err := ValidateUniqueSlots(models.ListPosts, [][2]string{
		{"monday", "09:00"},
		{"tuesday", "09:00"},
		{"monday", "09:00"},
	})
	if err == nil {
		t.Fatal("hai slot cùng (monday, 09:00) phải bị từ chối")
	}
}

func TestValidateUniqueSlots_KhacPhutLaHopLe(t *testing.T) {
	err := ValidateUniqueSlots(models.ListPosts, [][2]string{
		{"monday", "09:00"},
		{"monday", "09:01"},
	})
	if err != nil {
		t.Fatalf("(monday, 09:00) và (monday, 09:01) là hai khung giờ khác nhau, lỗi: %v", err)
	}
}
