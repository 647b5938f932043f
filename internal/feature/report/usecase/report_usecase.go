// Package usecase builds the downloadable user report.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"user_backend/internal/feature/users/domain/entity"
)

// HelloText is the body of the static sample document.
const HelloText = "Hello World"

// fieldSeparator joins the columns of a report line.
const fieldSeparator = "    "

// UserLister supplies the rows of the report.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserLister interface {
	List(ctx context.Context) ([]entity.User, error)
}

// Renderer turns report text into a document.
type Renderer interface {
	Render(text string) ([]byte, error)
}

// ReportUsecase produces the PDF exports.
type ReportUsecase struct {
	users    UserLister
	renderer Renderer
}

// NewReportUsecase creates a ReportUsecase.
func NewReportUsecase(users UserLister, renderer Renderer) *ReportUsecase {
	return &ReportUsecase{users: users, renderer: renderer}
}

// FormatUserReport lays out one line per user with the fields separated by four spaces.
func FormatUserReport(users []entity.User) string {
	var b strings.Builder
	for _, u := range users {
		first, last, email := u.Fields()
		b.WriteString(strings.Join([]string{first, last, email}, fieldSeparator))
		b.WriteString("\n")
	}
	return b.String()
}

// UserReportPDF renders the full user list into a document.
func (u *ReportUsecase) UserReportPDF(ctx context.Context) ([]byte, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users for report: %w", err)
	}
	doc, err := u.renderer.Render(FormatUserReport(users))
	if err != nil {
		return nil, fmt.Errorf("failed to render user report: %w", err)
	}
	return doc, nil
}

// HelloPDF renders the fixed sample document without touching the store.
func (u *ReportUsecase) HelloPDF() ([]byte, error) {
	doc, err := u.renderer.Render(HelloText)
	if err != nil {
		return nil, fmt.Errorf("failed to render sample document: %w", err)
	}
	return doc, nil
}
