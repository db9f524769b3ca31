// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang, đếm).
package models

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// UpdateCounts đại diện cho kết quả của một thao tác update.
// Matched = 0 nghĩa là không có document thỏa filter;
// Matched > 0 và Modified = 0 nghĩa là update không thay đổi gì (no-op).
type UpdateCounts struct {
	Matched  int64 `json:"matched" bson:"matched"`
	Modified int64 `json:"modified" bson:"modified"`
}
