// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the store connection is usable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Root は / エンドポイントで固定の挨拶文を返します。
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello world!")
}

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler は HealthHandler を作成します。db が nil の場合はDB確認を省略します。
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health はDB接続を確認し、キャッシュを防止したうえで状態を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			if c.Request.Method == http.MethodHead {
				c.Status(http.StatusServiceUnavailable)
				return
			}
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
