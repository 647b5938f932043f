// Package handler serves the PDF downloads.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF = "application/pdf"
	// errInternal is the only error text clients see; details go to the log.
	errInternal = "internal server error"
)

// ReportUsecase produces the downloadable documents.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReportUsecase interface {
	UserReportPDF(ctx context.Context) ([]byte, error)
	HelloPDF() ([]byte, error)
}

// ReportHandler streams PDF documents as attachments.
type ReportHandler struct {
	uc  ReportUsecase
	now func() time.Time
}

// NewReportHandler creates a ReportHandler using the wall clock for file names.
func NewReportHandler(uc ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc, now: time.Now}
}

// ReportFilename returns user_report_<YYYY-MM-DD>.pdf for t.
func ReportFilename(t time.Time) string {
	return "user_report_" + t.Format("2006-01-02") + ".pdf"
}

// Download sends the report of all users.
func (h *ReportHandler) Download(c *gin.Context) {
	doc, err := h.uc.UserReportPDF(c.Request.Context())
	if err != nil {
		slog.Error("user report failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	h.attach(c, doc)
}

// Hello sends the fixed sample document. It does not read the store.
func (h *ReportHandler) Hello(c *gin.Context) {
	doc, err := h.uc.HelloPDF()
	if err != nil {
		slog.Error("sample document failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	h.attach(c, doc)
}

func (h *ReportHandler) attach(c *gin.Context, doc []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, ReportFilename(h.now())))
	c.Data(http.StatusOK, contentTypePDF, doc)
}
