// Package facebookdto định nghĩa input cho các endpoint Facebook.
// AccessToken trong các input là tùy chọn: bỏ trống thì server dùng
// page token đã lưu (đã mã hóa) của user hiện tại.
package facebookdto

// ReplyMessageInput input gửi tin nhắn trả lời qua Messenger.
type ReplyMessageInput struct {
	PageID      string `json:"pageId" validate:"required"`             // ID của page gửi tin
	PSID        string `json:"psId" validate:"required"`               // Page-scoped ID của người nhận
	ReplyText   string `json:"replyText" validate:"required,no_xss"`   // Nội dung trả lời
	MessageType string `json:"messageType" validate:"omitempty,oneof=RESPONSE UPDATE MESSAGE_TAG"` // Loại tin nhắn, mặc định RESPONSE
	AccessToken string `json:"accessToken"`                            // Page access token (tùy chọn)
}

// ReplyCommentInput input trả lời một comment.
type ReplyCommentInput struct {
	CommentID   string `json:"commentId" validate:"required"`     // ID comment cần trả lời
	Reply       string `json:"reply" validate:"required,no_xss"`  // Nội dung trả lời
	AccessToken string `json:"accessToken"`                       // Page access token (tùy chọn)
}

// UploadPostInput input đăng bài mới lên page.
type UploadPostInput struct {
	PageID      string `json:"pageId" validate:"required"`          // ID page đích
	Message     string `json:"message" validate:"required,no_xss"`  // Nội dung bài đăng
	AccessToken string `json:"accessToken"`                         // Page access token (tùy chọn)
}

// UpdatePostInput input cập nhật bài đã đăng.
type UpdatePostInput struct {
	PostID      string `json:"postId" validate:"required"`          // ID bài đăng dạng <pageId>_<postId>
	Message     string `json:"message" validate:"required,no_xss"`  // Nội dung mới
	AccessToken string `json:"accessToken"`                         // Page access token (tùy chọn)
}

// FetchPageDataInput input lấy dữ liệu inbox/feed của page.
type FetchPageDataInput struct {
	PageID      string `json:"pageId" validate:"required"` // ID page cần lấy dữ liệu
	AccessToken string `json:"accessToken"`                // Page access token (tùy chọn)
}

// PageInfoInput input lấy thông tin page.
type PageInfoInput struct {
	PageID      string `json:"pageId" validate:"required"` // ID page
	AccessToken string `json:"accessToken"`                // Page access token (tùy chọn)
}

// SearchPagesInput input tìm page theo từ khóa.
type SearchPagesInput struct {
	Keywords    []string `json:"keywords" validate:"required,min=1,dive,no_xss"` // Danh sách từ khóa
	Limit       int      `json:"limit" validate:"omitempty,gte=1,lte=25"`        // Số kết quả tối đa
	AccessToken string   `json:"accessToken"`                                    // Access token (tùy chọn)
}

// ChatHistoryInput input lấy lịch sử một hội thoại.
type ChatHistoryInput struct {
	ChatID      string `json:"chatId" validate:"required"` // ID hội thoại (t_...)
	AccessToken string `json:"accessToken"`                // Page access token (tùy chọn)
}

// ExchangeTokenInput input đổi short-lived token lấy long-lived token.
type ExchangeTokenInput struct {
	ShortLivedToken string `json:"shortLivedToken" validate:"required"` // Token ngắn hạn từ client
}

// ExchangeTokenResult kết quả đổi token.
type ExchangeTokenResult struct {
	AccessToken string `json:"accessToken"` // Long-lived token
	TokenType   string `json:"tokenType"`   // Luôn là "Bearer"
}
