// Package utility - Test chuyển đổi chuỗi sang ObjectID.
package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"page_pilot/internal/common"
)

func TestObjectIDFromString_HopLe(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ObjectIDFromString(want.Hex())
	if err != nil {
		t.Fatalf("chuỗi hex 24 ký tự phải hợp lệ, lỗi: %v", err)
	}
	if got != want {
		t.Errorf("ObjectID không khớp: got %s, want %s", got.Hex(), want.Hex())
	}
}

func TestObjectIDFromString_KhongHopLe(t *testing.T) {
	cases := []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "64f1c0ffee"}
	for _, input := range cases {
		if _, err := ObjectIDFromString(input); err != common.ErrInvalidID {
			t.Errorf("input %q phải trả về ErrInvalidID, có: %v", input, err)
		}
	}
}

func TestString2ObjectID_KhongHopLeTraVeNil(t *testing.T) {
	if got := String2ObjectID("khong-hop-le"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, có: %s", got.Hex())
	}
}
