// ホスティングされた BaaS（PostgREST 互換の REST API）に保存する実装
// テーブル構成は infrastructures/sqlite と同じ
package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sobadon/carlot/internal/errutil"
)

const restPath = "/rest/v1/"

type Client struct {
	rc *resty.Client
}

// baseURL は "https://xxxx.example.co"
// key はサービスの API キー
func NewClient(baseURL string, key string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("apikey", key).
		SetAuthToken(key).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

// 疎通確認
// settings を 1 行だけ読んでみる
func (c *Client) Ping(ctx context.Context) error {
	var rows []json.RawMessage
	return c.selectRows(ctx, "settings", map[string]string{"limit": "1"}, &rows)
}

// params は PostgREST のクエリ（"id": "eq.xxx", "order": "name.asc" など）
func (c *Client) selectRows(ctx context.Context, table string, params map[string]string, out any) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParams(params).
		Get(restPath + table)
	if err != nil {
		return errors.Wrap(errutil.ErrBackendRequest, err.Error())
	}
	if resp.IsError() {
		return statusError(http.MethodGet, table, resp)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrap(errutil.ErrJSONDecode, err.Error())
	}
	return nil
}

// onConflict が空なら主キーで衝突判定
func (c *Client) upsert(ctx context.Context, table string, onConflict string, row any) error {
	req := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
		SetBody(row)
	if onConflict != "" {
		req.SetQueryParam("on_conflict", onConflict)
	}

	resp, err := req.Post(restPath + table)
	if err != nil {
		return errors.Wrap(errutil.ErrBackendRequest, err.Error())
	}
	if resp.IsError() {
		return statusError(http.MethodPost, table, resp)
	}
	return nil
}

// 追加のみ（衝突すればエラー）
func (c *Client) insert(ctx context.Context, table string, row any) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetBody(row).
		Post(restPath + table)
	if err != nil {
		return errors.Wrap(errutil.ErrBackendRequest, err.Error())
	}
	if resp.IsError() {
		return statusError(http.MethodPost, table, resp)
	}
	return nil
}

// 消した行数を返す
func (c *Client) delete(ctx context.Context, table string, params map[string]string) (int, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParams(params).
		Delete(restPath + table)
	if err != nil {
		return 0, errors.Wrap(errutil.ErrBackendRequest, err.Error())
	}
	if resp.IsError() {
		return 0, statusError(http.MethodDelete, table, resp)
	}

	var deleted []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &deleted); err != nil {
		return 0, errors.Wrap(errutil.ErrJSONDecode, err.Error())
	}
	return len(deleted), nil
}

// 一意制約の違反は errutil.ErrBackendConflict、それ以外は errutil.ErrBackendNotOK
func statusError(method string, table string, resp *resty.Response) error {
	if resp.StatusCode() == http.StatusConflict {
		return errors.Wrapf(errutil.ErrBackendConflict, "%s %s: %s", method, table, resp.String())
	}
	return errors.Wrapf(errutil.ErrBackendNotOK, "%s %s: %d %s", method, table, resp.StatusCode(), resp.String())
}

func eq(v string) string {
	return "eq." + v
}

// 空文字は null として送る
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
