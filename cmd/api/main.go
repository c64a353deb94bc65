package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dazos/cfo-copilot-api/infrastructure/database/postgres"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/googlesheets"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/googlesheets/gsclient"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/quickbooks"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/quickbooks/qbclient"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/salesforce"
	"github.com/dazos/cfo-copilot-api/infrastructure/integrator/salesforce/sfclient"
	"github.com/dazos/cfo-copilot-api/infrastructure/repository"
	"github.com/dazos/cfo-copilot-api/internal/api"
	"github.com/dazos/cfo-copilot-api/internal/config"
	"github.com/dazos/cfo-copilot-api/internal/scheduler"
	"github.com/dazos/cfo-copilot-api/internal/usecases/copilot"
	"github.com/dazos/cfo-copilot-api/internal/usecases/exporting"
	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	location, err := time.LoadLocation(cfg.SalesforceSync.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("invalid sync timezone: %s", cfg.SalesforceSync.Timezone)
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesforceStoreRepo := repository.NewSalesforceStoreRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	opportunityRepo := repository.NewOpportunityRepository(pgConn)
	lineItemRepo := repository.NewOpportunityLineItemRepository(pgConn)
	eodSnapshotRepo := repository.NewEODSnapshotRepository(pgConn)
	sheetSnapshotRepo := repository.NewSheetSnapshotRepository(pgConn)
	quickbooksSnapshotRepo := repository.NewQuickBooksSnapshotRepository(pgConn)

	salesforceClient := sfclient.NewClient(cfg)
	salesforceIntegrator := salesforce.New(cfg, salesforceClient)

	sheetsClient := gsclient.NewClient(cfg)
	sheetsIntegrator := googlesheets.New(cfg, sheetsClient)

	quickbooksClient := qbclient.NewClient(cfg)
	quickbooksIntegrator := quickbooks.New(cfg, quickbooksClient)

	syncingService := syncing.NewService(
		salesforceIntegrator,
		sheetsIntegrator,
		quickbooksIntegrator,
		salesforceStoreRepo,
		accountRepo,
		opportunityRepo,
		lineItemRepo,
		eodSnapshotRepo,
		sheetSnapshotRepo,
		quickbooksSnapshotRepo,
		location,
	)

	reportingService := reporting.NewService(accountRepo, opportunityRepo, lineItemRepo)
	exportingService := exporting.NewService(cfg, reportingService, sheetsIntegrator, location)
	copilotService := copilot.NewService(accountRepo, opportunityRepo, lineItemRepo, eodSnapshotRepo, location)

	salesforceJobService := scheduler.NewSalesforceJobService(syncingService, cfg, location)

	if err := salesforceJobService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting salesforce job scheduler")
	} else {
		logrus.Info("salesforce job scheduler started")
	}

	server, err := api.New(
		cfg,
		reportingService,
		syncingService,
		exportingService,
		copilotService,
		sheetSnapshotRepo,
		quickbooksSnapshotRepo,
		eodSnapshotRepo,
		salesforceJobService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens the database connection
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
