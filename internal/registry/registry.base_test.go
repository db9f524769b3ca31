package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("users", "collection-users")
	require.NoError(t, err)
	assert.True(t, isNew)

	item, exists := r.Get("users")
	assert.True(t, exists)
	assert.Equal(t, "collection-users", item)
}

func TestRegistry_RegisterTrungTen(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("posts", 1)
	require.NoError(t, err)

	isNew, err := r.Register("posts", 2)
	require.NoError(t, err)
	assert.False(t, isNew, "đăng ký trùng tên phải báo không phải item mới")

	// Item mới ghi đè item cũ
	item, _ := r.Get("posts")
	assert.Equal(t, 2, item)
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[string]()
	_, exists := r.Get("khong-co")
	assert.False(t, exists)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	item, err := r.GetOrCreate("schedules", func() (string, error) {
		return "created", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "created", item)

	// Lần hai không gọi lại creator
	item, err = r.GetOrCreate("schedules", func() (string, error) {
		t.Fatal("creator không được gọi lại khi item đã tồn tại")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "created", item)
}
