// Command importer loads a sales report workbook into the backing store and
// marks it as the active report.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/internal/ingest"
)

func main() {
	filePath := flag.String("file", "", "path to the report workbook (xlsx)")
	reportName := flag.String("name", "", "report name (defaults to the file name)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if *filePath == "" {
		logrus.Fatal("-file is required")
	}

	name := *reportName
	if name == "" {
		name = filepath.Base(*filePath)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to PostgreSQL")
	}
	defer conn.Close()

	f, err := os.Open(*filePath)
	if err != nil {
		logrus.WithError(err).Fatal("Could not open report file")
	}
	defer f.Close()

	importer := ingest.NewService(
		repository.NewReportRepository(conn),
		repository.NewSettingsRepository(conn),
	)

	meta, err := importer.ImportReport(ctx, name, f)
	if err != nil {
		logrus.WithError(err).Fatal("Report import failed")
	}

	logrus.WithFields(logrus.Fields{
		"report_id": meta.ID,
		"name":      meta.Name,
		"rows":      meta.RowCount,
	}).Info("Report imported and activated")
}
