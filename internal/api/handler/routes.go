package handler

import (
	"net/http"

	"github.com/dazos/cfo-copilot-api/infrastructure/repository"
	"github.com/dazos/cfo-copilot-api/internal/api/handler/router"
	"github.com/dazos/cfo-copilot-api/internal/usecases/copilot"
	"github.com/dazos/cfo-copilot-api/internal/usecases/exporting"
	"github.com/dazos/cfo-copilot-api/internal/usecases/reporting"
	"github.com/dazos/cfo-copilot-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard-kpi",
			Method:  http.MethodGet,
			Handler: GetDashboardKPI(service),
		},
		{
			Path:    "/api/dashboard-kpi/arr-examples",
			Method:  http.MethodGet,
			Handler: GetARRExamples(service),
		},
		{
			Path:    "/api/dashboard-kpi/arr-by-account",
			Method:  http.MethodGet,
			Handler: GetARRByAccount(service),
		},
		{
			Path:    "/api/arr-by-account-product",
			Method:  http.MethodGet,
			Handler: GetARRByAccountProduct(service),
		},
	}
}

func Listings(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(service),
		},
		{
			Path:    "/api/opportunities",
			Method:  http.MethodGet,
			Handler: ListOpportunities(service),
		},
	}
}

func Syncs(service syncing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sync/salesforce",
			Method:  http.MethodPost,
			Handler: RunSalesforceSync(service),
		},
		{
			Path:    "/api/sync/google-sheets",
			Method:  http.MethodPost,
			Handler: RunGoogleSheetsSync(service),
		},
		{
			Path:    "/api/sync/quickbooks",
			Method:  http.MethodPost,
			Handler: RunQuickBooksSync(service),
		},
	}
}

func Snapshots(sheetRepo repository.SheetSnapshotRepository, qbRepo repository.QuickBooksSnapshotRepository, eodRepo repository.EODSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sheet-snapshots/latest",
			Method:  http.MethodGet,
			Handler: GetLatestSheetSnapshot(sheetRepo),
		},
		{
			Path:    "/api/quickbooks/reports/:type",
			Method:  http.MethodGet,
			Handler: GetQuickBooksReport(qbRepo),
		},
		{
			Path:    "/api/eod-snapshots/dates",
			Method:  http.MethodGet,
			Handler: ListEODSnapshotDates(eodRepo),
		},
	}
}

func Export(service exporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/export/arr-to-google-sheet",
			Method:  http.MethodPost,
			Handler: ExportARRToGoogleSheet(service),
		},
	}
}

func Copilot(service copilot.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/api/copilot",
			Method:  http.MethodPost,
			Handler: AskCopilot(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
