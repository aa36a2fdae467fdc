package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 封装服务端 API 的 HTTP 客户端
// 所有响应在解码后过一遍 Normalize，界面层只看规范形状
type Client struct {
	rc      *resty.Client
	baseURL string
}

// APIError 非 2xx 响应
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("接口返回 %d: %s", e.StatusCode, e.Message)
}

// requestTimeout 单次请求的上限，resty 主通道和兜底通道共用
const requestTimeout = 15 * time.Second

// fallbackHTTP CreateOrder 兜底通道，和主通道一样带超时
var fallbackHTTP = &http.Client{Timeout: requestTimeout}

// New 创建客户端，固定超时和 UA
func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", "Resto-Go-App/1.0").
		SetHeader("Accept", "application/json")
	return &Client{rc: rc, baseURL: strings.TrimRight(baseURL, "/")}
}

// decode 解包响应体并归一化
func decode(resp *resty.Response) (any, error) {
	if resp.IsError() {
		msg := extractMessage(resp.Body())
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	var v any
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &v); err != nil {
			return nil, err
		}
	}
	return Normalize(v), nil
}

// extractMessage 从错误响应里掏 message 字段，掏不到就回原文
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}

// Get 拉取任意资源路径
func (c *Client) Get(path string) (any, error) {
	resp, err := c.rc.R().Get(path)
	if err != nil {
		return nil, err
	}
	return decode(resp)
}

// Post 创建资源
func (c *Client) Post(path string, payload any) (any, error) {
	resp, err := c.rc.R().SetBody(payload).Post(path)
	if err != nil {
		return nil, err
	}
	return decode(resp)
}

// Put 覆盖更新资源
func (c *Client) Put(path string, payload any) (any, error) {
	resp, err := c.rc.R().SetBody(payload).Put(path)
	if err != nil {
		return nil, err
	}
	return decode(resp)
}

// Delete 删除资源
func (c *Client) Delete(path string) (any, error) {
	resp, err := c.rc.R().Delete(path)
	if err != nil {
		return nil, err
	}
	return decode(resp)
}

// Login 登录校验，成功返回规范化后的用户对象
func (c *Client) Login(userName, password string) (map[string]any, error) {
	v, err := c.Post("/api/auth/login", map[string]string{
		"userName": userName,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	user, _ := v.(map[string]any)
	return user, nil
}

// ListOrderDetails 拉一张订单的明细行
func (c *Client) ListOrderDetails(orderID string) ([]any, error) {
	v, err := c.Get("/api/order-details/order/" + strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	rows, _ := v.([]any)
	return rows, nil
}

// CreateOrder 提交订单。
// resty 报网络层错误（非 HTTP 状态码）时退回到裸 net/http 再试一次，
// 其余路径都不重试，错误直接交给调用方。
func (c *Client) CreateOrder(payload any) (any, error) {
	resp, err := c.rc.R().SetBody(payload).Post("/api/orders")
	if err == nil {
		return decode(resp)
	}

	body, merr := json.Marshal(payload)
	if merr != nil {
		return nil, merr
	}
	httpResp, herr := fallbackHTTP.Post(c.baseURL+"/api/orders", "application/json", bytes.NewReader(body))
	if herr != nil {
		// 两种通道都不通，报第一次的错
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, rerr := io.ReadAll(httpResp.Body)
	if rerr != nil {
		return nil, rerr
	}
	if httpResp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: httpResp.StatusCode, Message: extractMessage(raw)}
	}
	var v any
	if len(raw) > 0 {
		if uerr := json.Unmarshal(raw, &v); uerr != nil {
			return nil, uerr
		}
	}
	return Normalize(v), nil
}
