package handler

import (
	"net/http"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	"github.com/yes-weigh/yesbheem-sub001/internal/api/handler/router"
	"github.com/yes-weigh/yesbheem-sub001/internal/scheduler"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/aggregating"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore"
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

func Dashboard(store dealerstore.Store, aggregator aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/states",
			Method:  http.MethodGet,
			Handler: GetStates(store, aggregator),
		},
		{
			Path:    "/v1/dashboard/country",
			Method:  http.MethodGet,
			Handler: GetCountry(store, aggregator),
		},
		{
			Path:    "/v1/dashboard/regions/:id",
			Method:  http.MethodGet,
			Handler: GetRegion(store, aggregator),
		},
		{
			Path:    "/v1/dashboard/regions/:id/districts",
			Method:  http.MethodGet,
			Handler: GetRegionDistricts(store, aggregator),
		},
	}
}

func Dealers(store dealerstore.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dealers",
			Method:  http.MethodGet,
			Handler: ListDealers(store),
		},
		{
			// Kept outside /v1/dealers because httprouter rejects a static
			// segment next to the :name wildcard.
			Path:    "/v1/deactivations",
			Method:  http.MethodGet,
			Handler: GetDeactivatedDealers(store),
		},
		{
			Path:    "/v1/dealers/:name/override",
			Method:  http.MethodPut,
			Handler: UpdateOverride(store),
		},
		{
			Path:    "/v1/dealers/:name/override",
			Method:  http.MethodDelete,
			Handler: RevertOverride(store),
		},
		{
			Path:    "/v1/dealers/:name/deactivate",
			Method:  http.MethodPost,
			Handler: DeactivateDealer(store),
		},
		{
			Path:    "/v1/dealers/:name/reactivate",
			Method:  http.MethodPost,
			Handler: ReactivateDealer(store),
		},
	}
}

func Reports(reports repository.ReportRepository, store dealerstore.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: ListReports(reports),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(reports),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodDelete,
			Handler: DeleteReport(reports, store),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetGeneralSettings(store),
		},
	}
}

func Pincodes(resolver pincode.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/pincodes/:code",
			Method:  http.MethodGet,
			Handler: ResolvePincode(resolver),
		},
	}
}

func CronJobs(store dealerstore.Store, refreshService *scheduler.DataRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCache(store, refreshService),
		},
		{
			Path:    "/v1/cron/refresh/run",
			Method:  http.MethodPost,
			Handler: RunRefreshJob(refreshService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(refreshService),
		},
	}
}
