// Package client 改写服务的HTTP客户端
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"slate/internal/model"
)

// ErrUnavailable 生成请求失败，网络错误和非2xx状态都归为此错误
var ErrUnavailable = errors.New("repurpose service unavailable")

type errorBody struct {
	Error string `json:"error"`
}

type Client struct {
	http *resty.Client
}

// New 创建指向baseURL的客户端，不做重试
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second),
	}
}

// Repurpose 提交表单并解析生成结果
func (c *Client) Repurpose(ctx context.Context, req model.RepurposeRequest) (*model.Bundle, error) {
	var bundle model.Bundle
	var apiErr errorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&bundle).
		SetError(&apiErr).
		Post("/api/repurpose")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.IsSuccess() {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode(), apiErr.Error)
		}
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	return &bundle, nil
}
