// Package fetch 对固定的公开 REST 接口发起一次 GET，并按状态码输出结果。
package fetch

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"course-basics/config"
	"course-basics/pkg/httpx"
)

// DefaultURL 演示使用的公开接口
const DefaultURL = "https://jsonplaceholder.typicode.com/posts/1"

// Cache 响应缓存，pkg/redis.Client 实现了该接口
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Result 一次 GET 的结果
type Result struct {
	StatusCode int
	Body       []byte
	FromCache  bool
}

// OK 是否为 200
func (r *Result) OK() bool { return r.StatusCode == http.StatusOK }

// Fetcher 发起 GET 请求；cache 为 nil 时每次都走网络
type Fetcher struct {
	client *httpx.Client
	url    string
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewFetcher 根据配置创建 Fetcher
func NewFetcher(cfg *config.FetchConfig, cache Cache, logger *zap.Logger) *Fetcher {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	client := httpx.NewClient(
		httpx.WithTimeout(cfg.Timeout),
		httpx.WithHeaders(http.Header{"Accept": []string{"application/json"}}),
		httpx.WithRetryPolicy(httpx.RetryPolicy{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  httpx.NoRetry.BaseDelay,
			MaxDelay:   httpx.NoRetry.MaxDelay,
			Jitter:     httpx.NoRetry.Jitter,
		}),
		httpx.WithLogger(logger),
	)
	return &Fetcher{
		client: client,
		url:    url,
		cache:  cache,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}
}

// URL 返回请求地址
func (f *Fetcher) URL() string { return f.url }

// Fetch 发起请求
// 非 2xx 不视为错误，状态码与响应体放在 Result 中；网络错误直接返回
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	if body, ok := f.lookup(ctx); ok {
		return &Result{StatusCode: http.StatusOK, Body: body, FromCache: true}, nil
	}

	resp, err := f.client.Get(ctx, f.url)
	if err != nil {
		var httpErr *httpx.HTTPError
		if errors.As(err, &httpErr) {
			f.logger.Debug("远端返回非成功状态", zap.String("url", f.url), zap.Int("status", httpErr.StatusCode))
			return &Result{StatusCode: httpErr.StatusCode, Body: httpErr.Body}, nil
		}
		f.logger.Error("请求失败", zap.String("url", f.url), zap.Error(err))
		return nil, err
	}

	result := &Result{StatusCode: resp.StatusCode, Body: resp.Body}
	if result.OK() {
		f.store(ctx, resp.Body)
	}
	return result, nil
}

// Close 释放空闲连接
func (f *Fetcher) Close() {
	f.client.CloseIdleConnections()
}

// 缓存失败只记日志，回退到网络请求
func (f *Fetcher) lookup(ctx context.Context) ([]byte, bool) {
	if f.cache == nil {
		return nil, false
	}
	body, ok, err := f.cache.Get(ctx, f.url)
	if err != nil {
		f.logger.Warn("读取响应缓存失败", zap.String("url", f.url), zap.Error(err))
		return nil, false
	}
	if ok {
		f.logger.Debug("命中响应缓存", zap.String("url", f.url))
	}
	return body, ok
}

func (f *Fetcher) store(ctx context.Context, body []byte) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Set(ctx, f.url, body, f.ttl); err != nil {
		f.logger.Warn("写入响应缓存失败", zap.String("url", f.url), zap.Error(err))
	}
}
