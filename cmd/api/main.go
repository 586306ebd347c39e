package main

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/LJTian/NewsFetcher/internal/api"
	"github.com/LJTian/NewsFetcher/internal/collector"
	"github.com/LJTian/NewsFetcher/internal/config"
	"github.com/LJTian/NewsFetcher/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	fetcher := &collector.BaiduNewsFetcher{
		BaseURL:   cfg.NewsBaseURL,
		UserAgent: cfg.NewsUserAgent,
		Timeout:   cfg.NewsTimeout,
		Logger:    zl.Named("collector"),
	}
	defaults := collector.Params{Count: cfg.NewsDefaultCount, Category: cfg.NewsDefaultCategory}

	r := gin.Default()
	// 若配置了全局访问密码，则启用 Basic Auth 保护（/health 仍然免认证）
	if cfg.BasicAuthUser != "" && cfg.BasicAuthPass != "" {
		r.Use(basicAuthMiddleware(cfg.BasicAuthUser, cfg.BasicAuthPass))
	}

	apiServer := api.NewServer(fetcher, defaults, zl.Named("api"))
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	zl.Info("starting api server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zl.Fatal("server exit", zap.Error(err))
	}
}

// basicAuthMiddleware 为整个站点增加一个简单的 Basic Auth 访问密码。
// 仅当配置了 APP_BASIC_USER / APP_BASIC_PASS 时启用。
// /health 不做认证，便于健康检查。
func basicAuthMiddleware(user, pass string) gin.HandlerFunc {
	const realm = "Restricted"
	uBytes := []byte(user)
	pBytes := []byte(pass)

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}
		u, p, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(u), uBytes) != 1 ||
			subtle.ConstantTimeCompare([]byte(p), pBytes) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
