package webhookhdl

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"page_pilot/config"
	"page_pilot/internal/global"
)

func newVerifyApp(t *testing.T) *fiber.App {
	t.Helper()
	global.MongoDB_ServerConfig = &config.Configuration{
		WebhookVerifyToken: "token-xac-minh",
	}

	// HandleVerify không đụng tới database nên không cần service
	handler := &WebhookHandler{}
	app := fiber.New()
	app.Get("/webhook", handler.HandleVerify)
	return app
}

func TestHandleVerify_TokenDung(t *testing.T) {
	app := newVerifyApp(t)

	req := httptest.NewRequest("GET", "/webhook?hub.mode=subscribe&hub.verify_token=token-xac-minh&hub.challenge=12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(body), "challenge phải được trả lại nguyên vẹn")
}

func TestHandleVerify_TokenSai(t *testing.T) {
	app := newVerifyApp(t)

	req := httptest.NewRequest("GET", "/webhook?hub.mode=subscribe&hub.verify_token=sai&hub.challenge=12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestHandleVerify_ModeSai(t *testing.T) {
	app := newVerifyApp(t)

	req := httptest.NewRequest("GET", "/webhook?hub.mode=unsubscribe&hub.verify_token=token-xac-minh&hub.challenge=12345", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestHandleVerify_ThieuThamSo(t *testing.T) {
	app := newVerifyApp(t)

	req := httptest.NewRequest("GET", "/webhook", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
