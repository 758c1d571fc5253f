package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"projectmanager/pkg/apierrors"
)

// ErrRequestFailed is the single error kind surfaced for any transport
// or backend failure. Callers branch with errors.Is; the diagnostic
// detail only reaches the log.
var ErrRequestFailed = errors.New("request failed")

// Client issues REST calls against a base URL and normalizes every
// failure mode into ErrRequestFailed wrapped with a localized message.
type Client struct {
	baseURL    string
	lang       string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, lang string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		lang:       lang,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			zap.L().Error("failed to encode request body", zap.String("method", method), zap.String("path", path), zap.Error(err))
			return c.requestError()
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		zap.L().Error("failed to build request", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return c.requestError()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.lang)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network-level failure: no status code to report.
		zap.L().Error("client error", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return c.requestError()
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Debug("failed to close response body", zap.Error(err))
		}
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.L().Error("failed to read response body", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return c.requestError()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		zap.L().Error("backend error",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(payload)),
		)
		return c.requestError()
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		zap.L().Error("failed to decode response body", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return c.requestError()
	}

	return nil
}

func (c *Client) requestError() error {
	message := apierrors.GetTransErrorMsg(apierrors.MsgRequestFailed, c.lang)
	return fmt.Errorf("%s: %w", message, ErrRequestFailed)
}
