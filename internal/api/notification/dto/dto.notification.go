package notificationdto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationSendInput đầu vào gửi thông báo mới tới một user.
type NotificationSendInput struct {
	UserID  primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	Title   string             `json:"title" bson:"title" validate:"required,min=10,max=100,no_xss"`
	Content string             `json:"content" bson:"content" validate:"required,min=10"`
}

// NotificationMarkSeenInput đầu vào đánh dấu thông báo đã xem.
type NotificationMarkSeenInput struct {
	NotificationID primitive.ObjectID `json:"notificationId" validate:"required"`
}

// NotificationMarkSeenResult kết quả đánh dấu đã xem.
type NotificationMarkSeenResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}
