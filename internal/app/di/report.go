package di

import (
	"gorm.io/gorm"

	"user_backend/internal/feature/report/adapters/pdf"
	"user_backend/internal/feature/report/transport/handler"
	"user_backend/internal/feature/report/usecase"
	"user_backend/internal/feature/users/adapters"
)

// NewReportHandler wires the PDF exporter. The report reads users through the
// same repository as the CRUD endpoints.
func NewReportHandler(db *gorm.DB) *handler.ReportHandler {
	repo := adapters.NewUserRepository(db)
	return handler.NewReportHandler(usecase.NewReportUsecase(repo, pdf.NewRenderer()))
}
