package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"app/internal/repository"
)

type ctxKey int

const tokenCtxKey ctxKey = 0

// WithToken はリクエストコンテキストにBearerトークンを載せる。
// ミドルウェアで保存して、全wrapper共通のdo()が取り出して付与する。
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenCtxKey).(string)
	return tok, ok && tok != ""
}

// 外部APIの共通レスポンスエンベロープ。
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
}

const codeAccountSuspended = "ACCOUNT_SUSPENDED"

// Client は外部REST APIの共有HTTPプリミティブ。
// 認証はBearerトークンのみで、upstreamのSet-Cookieは保持しない
// （クライアントは全ビューワー共有なのでcookieを持つとユーザー間で漏れる）。
// リトライ・バックオフ・重複排除はしない。
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// do は1回のAPI呼び出し。エンベロープを剥がしてoutへ詰める。
// 失敗時はサーバーのmessageがあればそれを、無ければ操作固有のfallbackを返す。
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", fallback, err)
		}
		reader = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		//ネットワーク障害
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}

	//エンベロープは壊れていても一旦パースを試みる（messageを拾うため）
	var env envelope
	parseErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusNotFound {
		return repository.ErrNotFound
	}
	if resp.StatusCode == http.StatusForbidden && parseErr == nil && env.Code == codeAccountSuspended {
		return repository.ErrSuspended
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parseErr == nil && env.Message != "" {
			return errors.New(env.Message)
		}
		//本文がパースできない非2xx
		return errors.New(fallback)
	}

	if out == nil {
		return nil
	}
	if parseErr != nil || env.Data == nil {
		//エンベロープ逸脱はエラー扱い
		return fmt.Errorf("%s: unexpected response", fallback)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	return nil
}
