package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// BsonWrapper chứa các thao tác bson cơ bản như $set, $push, $unset.
// Dùng để chuyển đổi struct thành bản đồ truy vấn mongo.
type BsonWrapper struct {
	// Set sẽ đặt dữ liệu trong db.
	// Sau khi mã hóa thành bson sẽ có dạng { $set : {name : "Jack"}}
	Set interface{} `json:"$set,omitempty" bson:"$set,omitempty"`

	// Unset xóa một trường cụ thể. Nếu trường không tồn tại, Unset không làm gì cả.
	Unset interface{} `json:"$unset,omitempty" bson:"$unset,omitempty"`

	// Push thêm một giá trị vào một mảng. Nếu trường chưa có,
	// Push tạo trường mảng với giá trị là phần tử của nó.
	Push interface{} `json:"$push,omitempty" bson:"$push,omitempty"`
}

// ToMap chuyển đổi struct thành map thông qua bson marshal/unmarshal.
// Các field có bson tag omitempty và đang rỗng sẽ không xuất hiện trong map,
// nhờ vậy các sparse unique index không bị đụng giá trị rỗng trùng nhau.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(itr, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
