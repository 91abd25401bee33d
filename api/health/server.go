package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := hrm.healthService.GetServerHealthStatus()
	gecho.Success(w,
		gecho.WithData(healthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	dbHealthStatus, err := hrm.healthService.GetDatabaseHealthStatus(r.Context())
	if err != nil {
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("Database health check failed"),
			gecho.WithData(dbHealthStatus),
			gecho.Send(),
		)
		return
	}
	gecho.Success(w,
		gecho.WithData(dbHealthStatus),
		gecho.Send(),
	)
}

// GetDependenciesHealth reports every backing service. Any failed check turns the answer into a 503.
func (hrm *HealthRoutesManager) GetDependenciesHealth(w http.ResponseWriter, r *http.Request) {
	statuses, healthy := hrm.healthService.GetDependencyStatuses(r.Context())
	if !healthy {
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("One or more dependencies are unavailable"),
			gecho.WithData(statuses),
			gecho.Send(),
		)
		return
	}
	gecho.Success(w,
		gecho.WithData(statuses),
		gecho.Send(),
	)
}
