package transcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shiosai/vodfront/internal/domain"
	"github.com/shiosai/vodfront/internal/usecase"
)

var _ usecase.Transcoder = (*Client)(nil)

const maxResponseSize = 1 << 20

// defaultConvertTimeout は変換ワーカー呼び出しの上限時間。
// リースのTTLより短くないと、タイムアウト前にリースが失効する。
const defaultConvertTimeout = 90 * time.Second

type convertRequest struct {
	AssetBucket string `json:"asset_bucket"`
	AssetObject string `json:"asset_object"`
	Reencode    bool   `json:"reencode"`
}

type convertResponse struct {
	Status string `json:"status"`
	Video  string `json:"video"`
}

// Client は変換ワーカーAPIへのHTTPクライアント
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("transcoder endpoint is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("transcoder API key is required")
	}

	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultConvertTimeout},
	}, nil
}

// Convert は変換ワーカーを同期的に呼び出す。
// 正常応答が返った時点で派生成果物はVODバケットにアップロード済みである。
func (c *Client) Convert(ctx context.Context, bucket, objectPath string, mode domain.ConversionMode) error {
	body, err := json.Marshal(convertRequest{
		AssetBucket: bucket,
		AssetObject: objectPath,
		Reencode:    mode.Reencode(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode convert request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/transcode", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create convert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("transcoder request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read transcoder response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transcoder returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var converted convertResponse
	if err := json.Unmarshal(respBody, &converted); err != nil {
		return fmt.Errorf("failed to decode transcoder response: %w", err)
	}
	if converted.Status != "success" {
		return fmt.Errorf("transcoder reported status %q", converted.Status)
	}

	return nil
}
