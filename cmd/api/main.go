package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/database/postgres"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode/pincodeclient"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	"github.com/yes-weigh/yesbheem-sub001/internal/api"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/internal/scheduler"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/aggregating"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/merging"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/normalizing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	reportRepo := repository.NewReportRepository(pgConn)
	overrideRepo := repository.NewOverrideRepository(pgConn)
	deactivationRepo := repository.NewDeactivationRepository(pgConn)
	kpiRepo := repository.NewKPIRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)

	normalizer := normalizing.NewService()
	merger := merging.NewService(cfg)
	aggregator := aggregating.NewService(cfg, normalizer, merger)

	store := dealerstore.NewService(
		cfg,
		reportRepo,
		overrideRepo,
		deactivationRepo,
		kpiRepo,
		settingsRepo,
		merger,
	)

	pincodeClient := pincodeclient.NewClient(cfg)
	pincodeResolver := pincode.New(cfg, pincodeClient, settingsRepo)

	refreshService := scheduler.NewDataRefreshService(store, pincodeResolver, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the data refresh scheduler")
	} else {
		logrus.Info("Data refresh scheduler started")
	}

	server, err := api.New(
		cfg,
		store,
		aggregator,
		reportRepo,
		pincodeResolver,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("PostgreSQL connection check failed")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
