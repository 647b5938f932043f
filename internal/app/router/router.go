package router

import (
	reporthandler "user_backend/internal/feature/report/transport/handler"
	usershandler "user_backend/internal/feature/users/transport/handler"
	platformhandler "user_backend/internal/platform/http/handler"
	"user_backend/internal/platform/view"

	"github.com/gin-gonic/gin"
)

func NewRouter(health *platformhandler.HealthHandler, users *usershandler.UserHandler,
	reports *reporthandler.ReportHandler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(view.Templates())

	// 導通確認用
	r.GET("/", platformhandler.Root)
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)

	// ユーザーCRUD
	r.GET("/users", users.List)
	r.GET("/users-by-header", users.ListByHeader)
	r.GET("/users/:id", users.Get)
	r.POST("/users", users.Create)
	r.PATCH("/users/:id", users.Patch)
	r.PUT("/users/:id", users.Replace)
	r.DELETE("/users/:id", users.Delete)

	// PDFダウンロード
	r.GET("/download", reports.Download)
	r.GET("/download/hello", reports.Hello)

	return r
}
