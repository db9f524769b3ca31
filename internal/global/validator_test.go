package global

import (
	"testing"
)

func TestValidatorHHMM(t *testing.T) {
	InitValidator()

	type input struct {
		TimeOfDay string `validate:"hhmm"`
	}

	valid := []string{"00:00", "09:30", "23:59", "12:05"}
	for _, v := range valid {
		if err := Validate.Struct(input{TimeOfDay: v}); err != nil {
			t.Errorf("%q phải là time-of-day hợp lệ, lỗi: %v", v, err)
		}
	}

	invalid := []string{"24:00", "9:30", "12:60", "12h30", "", "12:5"}
	for _, v := range invalid {
		if err := Validate.Struct(input{TimeOfDay: v}); err == nil {
			t.Errorf("%q phải bị từ chối", v)
		}
	}
}

func TestValidatorDayOfWeek(t *testing.T) {
	InitValidator()

	type input struct {
		Day string `validate:"day_of_week"`
	}

	for _, v := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		if err := Validate.Struct(input{Day: v}); err != nil {
			t.Errorf("%q phải hợp lệ, lỗi: %v", v, err)
		}
	}

	for _, v := range []string{"Monday", "MONDAY", "thu", "funday", ""} {
		if err := Validate.Struct(input{Day: v}); err == nil {
			t.Errorf("%q phải bị từ chối (chỉ chấp nhận lowercase đầy đủ)", v)
		}
	}
}

func TestValidatorNoXSS(t *testing.T) {
	InitValidator()

	type input struct {
		Content string `validate:"no_xss"`
	}

	if err := Validate.Struct(input{Content: "Bài viết giới thiệu quán cà phê"}); err != nil {
		t.Errorf("nội dung thường phải hợp lệ, lỗi: %v", err)
	}

	dangerous := []string{
		"<script>alert(1)</script>",
		"xem thêm javascript:void(0)",
		`<img src=x onerror=alert(1)>`,
		"<IFRAME src='x'>",
	}
	for _, v := range dangerous {
		if err := Validate.Struct(input{Content: v}); err == nil {
			t.Errorf("%q phải bị chặn", v)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	if !IsValidTimeOfDay("08:15") {
		t.Error("08:15 phải hợp lệ")
	}
	if IsValidTimeOfDay("8:15") {
		t.Error("8:15 thiếu số 0 đầu phải bị từ chối")
	}
}
