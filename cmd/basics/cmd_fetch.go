package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"course-basics/internal/fetch"
	"course-basics/pkg/redis"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "对 fetch.url 发起一次 GET，200 打印 JSON，否则打印状态码",
	Long: `默认请求 https://jsonplaceholder.typicode.com/posts/1。

离线运行时先启动 sandbox，再把地址指过去：
  go run ./cmd/sandbox &
  BASICS_FETCH_URL=http://localhost:8080/posts/1 basics fetch
  BASICS_FETCH_URL=http://localhost:8080/status/503 basics fetch

配置了 redis.addr 时 200 响应会缓存 fetch.cache_ttl。`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	// Redis 可选：未配置或连接失败时直接走网络
	var cache fetch.Cache
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	switch {
	case err == nil:
		defer rdb.Close()
		cache = rdb
	case errors.Is(err, redis.ErrDisabled):
	default:
		logger.Warn("Redis 连接失败，响应缓存不可用", zap.Error(err))
	}

	f := fetch.NewFetcher(&cfg.Fetch, cache, logger)
	defer f.Close()

	logger.Debug("发起请求", zap.String("url", f.URL()))
	return fetch.RunDemo(ctx, f, cmd.OutOrStdout())
}
