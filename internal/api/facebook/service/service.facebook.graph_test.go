package facebooksvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"page_pilot/internal/common"
)

// newTestServer dựng server giả lập Graph API cho handler được cung cấp.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *GraphClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewGraphClientWithBase(server.URL, "v21.0")
}

func TestFetchAllPages_GopDuLieuTheoThuTu(t *testing.T) {
	var server *httptest.Server
	server, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("after")
		w.Header().Set("Content-Type", "application/json")
		switch page {
		case "":
			// Trang đầu phải nhận được query params gốc
			assert.Equal(t, "token-1", r.URL.Query().Get("access_token"))
			fmt.Fprintf(w, `{"data":[{"id":"a"},{"id":"b"}],"paging":{"next":"%s/v21.0/123/posts?after=p2"}}`, server.URL)
		case "p2":
			fmt.Fprint(w, `{"data":[{"id":"c"},{"id":"d"}],"paging":{}}`)
		default:
			t.Errorf("cursor không mong đợi: %s", page)
		}
	})

	data, err := client.FetchAllPages(context.Background(), "/v21.0/123/posts", map[string]string{
		"access_token": "token-1",
	})
	require.NoError(t, err)
	require.Len(t, data, 4)

	var ids []string
	for _, item := range data {
		ids = append(ids, item["id"].(string))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids, "dữ liệu phải giữ nguyên thứ tự các trang")
}

func TestFetchAllPages_LoiGiuaChungKhongTraKetQuaCucBo(t *testing.T) {
	var server *httptest.Server
	server, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("after") == "" {
			fmt.Fprintf(w, `{"data":[{"id":"a"}],"paging":{"next":"%s/v21.0/123/posts?after=p2"}}`, server.URL)
			return
		}
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"message":"token expired","code":190}}`)
	})

	data, err := client.FetchAllPages(context.Background(), "/v21.0/123/posts", nil)
	require.Error(t, err)
	assert.Nil(t, data, "lỗi giữa chừng thì không được trả kết quả cục bộ")

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.StatusCode, "status của upstream phải được giữ nguyên")
	assert.Equal(t, common.ErrCodeUpstream.Code, appErr.Code.Code)
}

func TestFetchAllPages_ChanVongLapVoHan(t *testing.T) {
	// Server luôn trả paging.next trỏ về chính nó, client phải tự cắt vòng lặp
	var server *httptest.Server
	server, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":[{"id":"x"}],"paging":{"next":"%s/v21.0/123/posts"}}`, server.URL)
	})

	data, err := client.FetchAllPages(context.Background(), "/v21.0/123/posts", nil)
	require.Error(t, err)
	assert.Nil(t, data)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusBadGateway, appErr.StatusCode)
}

func TestGetPageInfo_ParseDayDuTruong(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v21.0/999", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "999",
			"name":     "Quán Cà Phê Nhỏ",
			"category": "Coffee Shop",
			"website":  "https://example.com",
		})
	})

	info, err := client.GetPageInfo(context.Background(), "999", "tok")
	require.NoError(t, err)
	assert.Equal(t, "999", info.ID)
	assert.Equal(t, "Quán Cà Phê Nhỏ", info.Name)
	assert.Equal(t, "Coffee Shop", info.Category)
}

func TestReplyToMessage_GuiDungPayload(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v21.0/123/messages", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("access_token"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "RESPONSE", payload["messaging_type"], "không truyền messageType thì mặc định RESPONSE")
		recipient := payload["recipient"].(map[string]interface{})
		assert.Equal(t, "psid-1", recipient["id"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"recipient_id":"psid-1","message_id":"mid.1"}`)
	})

	result, err := client.ReplyToMessage(context.Background(), "123", "psid-1", "xin chào", "", "tok")
	require.NoError(t, err)
	assert.Equal(t, "mid.1", result["message_id"])
}

func TestDecodeGraphResponse_BodyChuaErrorLaLoi(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// Graph API đôi khi trả 200 kèm object error trong body
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"error":{"message":"Unsupported get request","code":100}}`)
	})

	_, err := client.GetPageInfo(context.Background(), "123", "tok")
	require.Error(t, err)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.ErrCodeUpstream.Code, appErr.Code.Code)
}
