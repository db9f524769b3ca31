// Package facebooksvc - gateway gọi Meta Graph API.
package facebooksvc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	models "page_pilot/internal/api/facebook/models"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
)

// maxGraphPages giới hạn số trang theo paging.next trong một lần fetch,
// chặn vòng lặp vô hạn khi upstream trả cursor hỏng.
const maxGraphPages = 200

// GraphClient client gọi Meta Graph API qua resty.
type GraphClient struct {
	client  *resty.Client
	version string
}

// NewGraphClient tạo GraphClient từ cấu hình server.
func NewGraphClient() *GraphClient {
	cfg := global.MongoDB_ServerConfig
	return NewGraphClientWithBase(cfg.GraphAPIBaseURL, cfg.GraphAPIVersion)
}

// NewGraphClientWithBase tạo GraphClient với base URL tùy ý (dùng cho test).
func NewGraphClientWithBase(baseURL, version string) *GraphClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second)
	return &GraphClient{
		client:  client,
		version: version,
	}
}

// graphPath dựng path Graph API kèm version: /v21.0/<segments>.
func (g *GraphClient) graphPath(segments ...string) string {
	return "/" + g.version + "/" + strings.Join(segments, "/")
}

// graphEnvelope cấu trúc chung của response phân trang từ Graph API.
type graphEnvelope struct {
	Data   []map[string]interface{} `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
	Error map[string]interface{} `json:"error"`
}

// decodeGraphResponse kiểm tra status và key "error" trong body.
// Upstream trả lỗi thì status của upstream được chuyển nguyên vẹn về client.
func decodeGraphResponse(resp *resty.Response, out interface{}) error {
	var body map[string]interface{}
	if len(resp.Body()) > 0 {
		// Body không phải JSON thì giữ raw string làm details
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			body = map[string]interface{}{"raw": string(resp.Body())}
		}
	}
	if resp.IsError() {
		return common.NewUpstreamError(resp.StatusCode(), body)
	}
	if graphErr, ok := body["error"]; ok {
		return common.NewUpstreamError(common.StatusBadRequest, graphErr)
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"raw": string(resp.Body())})
		}
	}
	return nil
}

// FetchAllPages gọi GET và đi theo paging.next cho tới khi hết trang.
// Query params chỉ gắn vào request đầu; URL next đã chứa sẵn cursor.
// Bất kỳ trang nào lỗi thì trả lỗi ngay, không trả kết quả cục bộ.
func (g *GraphClient) FetchAllPages(ctx context.Context, path string, params map[string]string) ([]map[string]interface{}, error) {
	allData := []map[string]interface{}{}
	url := path
	first := true

	for pageCount := 0; url != ""; pageCount++ {
		if pageCount >= maxGraphPages {
			return nil, common.NewError(
				common.ErrCodeUpstream,
				fmt.Sprintf("Graph API trả quá %d trang, dừng để tránh lặp vô hạn", maxGraphPages),
				common.StatusBadGateway,
				nil,
			)
		}

		req := g.client.R().SetContext(ctx)
		if first {
			req.SetQueryParams(params)
			first = false
		}
		resp, err := req.Get(url)
		if err != nil {
			return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
		}

		var envelope graphEnvelope
		if err := decodeGraphResponse(resp, &envelope); err != nil {
			return nil, err
		}

		allData = append(allData, envelope.Data...)
		url = envelope.Paging.Next
	}

	return allData, nil
}

// UploadPost đăng bài mới lên feed của một page. Trả về id bài dạng <PAGEID_POSTID>.
func (g *GraphClient) UploadPost(ctx context.Context, pageID, message, accessToken string) (map[string]interface{}, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"message":      message,
			"access_token": accessToken,
		}).
		Post(g.graphPath(pageID, "feed"))
	if err != nil {
		return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var result map[string]interface{}
	if err := decodeGraphResponse(resp, &result); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"page_id": pageID, "post_id": result["id"]}).Info("UploadPost: Đã đăng bài lên page")
	return result, nil
}

// UpdatePost cập nhật nội dung một bài đã đăng.
func (g *GraphClient) UpdatePost(ctx context.Context, postID, message, accessToken string) (map[string]interface{}, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"message":      message,
			"access_token": accessToken,
		}).
		Post(g.graphPath(postID))
	if err != nil {
		return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var result map[string]interface{}
	if err := decodeGraphResponse(resp, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPageInfo lấy thông tin cơ bản của một page.
func (g *GraphClient) GetPageInfo(ctx context.Context, pageID, accessToken string) (*models.PageInfo, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "id,name,about,description,category,category_list,website",
			"access_token": accessToken,
		}).
		Get(g.graphPath(pageID))
	if err != nil {
		return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var info models.PageInfo
	if err := decodeGraphResponse(resp, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ReplyToMessage gửi tin nhắn trả lời tới một user qua Messenger Send API.
func (g *GraphClient) ReplyToMessage(ctx context.Context, pageID, psid, text, messagingType, accessToken string) (map[string]interface{}, error) {
	if messagingType == "" {
		messagingType = "RESPONSE"
	}
	payload := map[string]interface{}{
		"recipient":      map[string]string{"id": psid},
		"message":        map[string]string{"text": text},
		"messaging_type": messagingType,
	}
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("access_token", accessToken).
		SetBody(payload).
		Post(g.graphPath(pageID, "messages"))
	if err != nil {
		return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var result map[string]interface{}
	if err := decodeGraphResponse(resp, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplyToComment trả lời một comment trên bài đăng của page.
func (g *GraphClient) ReplyToComment(ctx context.Context, commentID, reply, accessToken string) (map[string]interface{}, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"message":      reply,
			"access_token": accessToken,
		}).
		Post(g.graphPath(commentID, "comments"))
	if err != nil {
		return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var result map[string]interface{}
	if err := decodeGraphResponse(resp, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchPages tìm page theo keyword, trả kết quả rút gọn id/name/category.
func (g *GraphClient) SearchPages(ctx context.Context, keywords []string, limit int, accessToken string) ([]models.PageSummary, error) {
	if limit <= 0 {
		limit = 5
	}
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"type":         "page",
			"q":            strings.Join(keywords, " "),
			"fields":       "id,name,category",
			"limit":        fmt.Sprintf("%d", limit),
			"access_token": accessToken,
		}).
		Get(g.graphPath("search"))
	if err != nil {
		return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var envelope struct {
		Data []models.PageSummary `json:"data"`
	}
	if err := decodeGraphResponse(resp, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// GetChatHistory lấy lịch sử một hội thoại, định dạng lại cho dễ đọc.
func (g *GraphClient) GetChatHistory(ctx context.Context, chatID, accessToken string) ([]models.ChatMessage, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "message,from,to,created_time",
			"access_token": accessToken,
		}).
		Get(g.graphPath(chatID, "messages"))
	if err != nil {
		return nil, common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var envelope struct {
		Data []struct {
			Message string `json:"message"`
			From    struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"from"`
			To struct {
				Data []struct {
					ID string `json:"id"`
				} `json:"data"`
			} `json:"to"`
			CreatedTime string `json:"created_time"`
		} `json:"data"`
	}
	if err := decodeGraphResponse(resp, &envelope); err != nil {
		return nil, err
	}

	messages := make([]models.ChatMessage, 0, len(envelope.Data))
	for _, msg := range envelope.Data {
		chatMsg := models.ChatMessage{
			SenderID:    msg.From.ID,
			SenderName:  msg.From.Name,
			Message:     msg.Message,
			CreatedTime: msg.CreatedTime,
		}
		if chatMsg.SenderName == "" {
			chatMsg.SenderName = "Unknown"
		}
		if len(msg.To.Data) > 0 {
			chatMsg.RecipientID = msg.To.Data[0].ID
		}
		messages = append(messages, chatMsg)
	}
	return messages, nil
}

// FetchPageMessages lấy toàn bộ hội thoại (inbox) của một page, theo hết các trang.
func (g *GraphClient) FetchPageMessages(ctx context.Context, pageID, accessToken string) ([]map[string]interface{}, error) {
	return g.FetchAllPages(ctx, g.graphPath(pageID, "conversations"), map[string]string{
		"access_token": accessToken,
		"fields":       "participants,messages{from,message,created_time}",
	})
}

// FetchPageFeedInteractions lấy toàn bộ bài đăng kèm comment/reaction của một page.
func (g *GraphClient) FetchPageFeedInteractions(ctx context.Context, pageID, accessToken string) ([]map[string]interface{}, error) {
	return g.FetchAllPages(ctx, g.graphPath(pageID, "posts"), map[string]string{
		"access_token": accessToken,
		"fields":       "id,message,created_time,comments{from,id,message,created_time},reactions{type,id,name}",
	})
}

// ExchangeToken đổi short-lived token lấy long-lived token.
func (g *GraphClient) ExchangeToken(ctx context.Context, shortLivedToken string) (string, error) {
	cfg := global.MongoDB_ServerConfig
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type":        "fb_exchange_token",
			"client_id":         cfg.FacebookAppID,
			"client_secret":     cfg.FacebookAppSecret,
			"fb_exchange_token": shortLivedToken,
		}).
		Get(g.graphPath("oauth", "access_token"))
	if err != nil {
		return "", common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": err.Error()})
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := decodeGraphResponse(resp, &result); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", common.NewUpstreamError(common.StatusBadGateway, map[string]interface{}{"message": "Upstream không trả access_token"})
	}
	return result.AccessToken, nil
}
