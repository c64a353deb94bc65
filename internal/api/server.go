package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/dazos/cfo-copilot-api/infrastructure/repository"
	"github.com/dazos/cfo-copilot-api/internal/api/handler"
	"github.com/dazos/cfo-copilot-api/internal/api/handler/router"
	"github.com/dazos/cfo-copilot-api/internal/config"
	"github.com/dazos/cfo-copilot-api/internal/scheduler"
	"github.com/dazos/cfo-copilot-api/internal/usecases/copilot"
	"github.com/dazos/cfo-copilot-api/internal/usecases/exporting"
	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/internal/usecases/syncing"
	"github.com/dazos/cfo-copilot-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportingService reporting.Service,
	syncingService syncing.Service,
	exportingService exporting.Service,
	copilotService copilot.Service,
	sheetRepo repository.SheetSnapshotRepository,
	qbRepo repository.QuickBooksSnapshotRepository,
	eodRepo repository.EODSnapshotRepository,
	salesforceJobService *scheduler.SalesforceJobService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SalesforceJobService: salesforceJobService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(reportingService)...),
		router.WithRoutes(handler.Listings(reportingService)...),
		router.WithRoutes(handler.Syncs(syncingService)...),
		router.WithRoutes(handler.Snapshots(sheetRepo, qbRepo, eodRepo)...),
		router.WithRoutes(handler.Export(exportingService)...),
		router.WithRoutes(handler.Copilot(copilotService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AppPasswordMiddleware(config.Auth.AppPassword),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server stopped")
	return nil
}
