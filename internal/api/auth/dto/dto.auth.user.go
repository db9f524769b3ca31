package authdto

// UserRegisterInput đầu vào đăng ký người dùng.
type UserRegisterInput struct {
	Username string `json:"username" bson:"username" validate:"required,min=3,max=30,no_xss"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Password string `json:"password" bson:"-" validate:"required,min=8"`
}

// UserLoginInput đầu vào đăng nhập người dùng.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Username string `json:"username,omitempty" bson:"username,omitempty" validate:"omitempty,min=3,max=30,no_xss"`
}

// UserLoginResult kết quả đăng nhập trả về cho client.
type UserLoginResult struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	User        interface{} `json:"user"`
}
