// Command hellopdf writes the static "Hello World" document without starting the server.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"user_backend/internal/feature/report/adapters/pdf"
	"user_backend/internal/feature/report/transport/handler"
	"user_backend/internal/feature/report/usecase"
)

func main() {
	out := flag.String("o", handler.ReportFilename(time.Now()), "output file")
	flag.Parse()

	doc, err := usecase.NewReportUsecase(nil, pdf.NewRenderer()).HelloPDF()
	if err != nil {
		log.Fatalf("failed to render pdf: %v", err)
	}
	if err := os.WriteFile(*out, doc, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}
	slog.Info("pdf written", "path", *out, "bytes", len(doc))
}
