package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_MapThuongBocTrongSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{"title": "Bài mới", "status": "draft"})
	require.NoError(t, err)

	assert.Equal(t, "Bài mới", update.Set["title"])
	assert.Equal(t, "draft", update.Set["status"])
	assert.Nil(t, update.Unset)
	assert.Nil(t, update.Push)
}

func TestToUpdateData_GiuNguyenOperator(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$set":  bson.M{"seen": true},
		"$push": bson.M{"comments": "gop y"},
	})
	require.NoError(t, err)

	assert.Equal(t, true, update.Set["seen"])
	assert.Equal(t, "gop y", update.Push["comments"])
}

func TestToUpdateData_ChiCoOperatorKhongBocTrongSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$push": bson.M{"posts": bson.M{"id": "x", "dayOfWeek": "monday"}},
	})
	require.NoError(t, err)

	require.NotNil(t, update.Push, "$push không có $set đi kèm vẫn phải được nhận diện là operator")
	assert.Contains(t, update.Push, "posts")
	assert.Nil(t, update.Set, "$push không được rơi vào nhánh wrap $set")

	// Document gửi xuống driver phải giữ operator ở cấp cao nhất
	raw, err := bson.Marshal(update)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "$push")
	assert.NotContains(t, doc, "$set")
}

func TestToUpdateData_ChiCoPull(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$pull": bson.M{"posts": bson.M{"id": "x"}},
	})
	require.NoError(t, err)

	require.NotNil(t, update.Pull)
	assert.Contains(t, update.Pull, "posts")
	assert.Nil(t, update.Set)
}

func TestToUpdateData_ChiCoAddToSet(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$addToSet": bson.M{"businessKeyWords": "cà phê"},
	})
	require.NoError(t, err)

	require.NotNil(t, update.AddToSet)
	assert.Equal(t, "cà phê", update.AddToSet["businessKeyWords"])
	assert.Nil(t, update.Set)

	raw, err := bson.Marshal(update)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "$addToSet")
	assert.NotContains(t, doc, "$set")
}

func TestToUpdateData_DaLaUpdateData(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"a": 1}}
	update, err := ToUpdateData(original)
	require.NoError(t, err)
	assert.Same(t, original, update, "UpdateData truyền vào phải được trả về nguyên vẹn")
}

func TestToUpdateData_StructVoiOmitempty(t *testing.T) {
	type patch struct {
		Title    string `bson:"title,omitempty"`
		Category string `bson:"category,omitempty"`
	}
	update, err := ToUpdateData(patch{Title: "Chi co title"})
	require.NoError(t, err)

	assert.Contains(t, update.Set, "title")
	assert.NotContains(t, update.Set, "category", "field rỗng với omitempty không được xuất hiện trong $set")
}
