package jobs

import (
	"fmt"
	"log/slog"

	"transportes/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fleetReportJob *FleetReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	vehiculosLibresHandler queries.GetVehiculosLibresQueryHandler,
	conductoresSinVehiculosHandler queries.GetConductoresSinVehiculosQueryHandler,
	pedidosActivosHandler queries.GetPedidosActivosQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fleetReportJob: NewFleetReportJob(
			vehiculosLibresHandler,
			conductoresSinVehiculosHandler,
			pedidosActivosHandler,
			reportSchedule,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fleetReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fleetReportJob.Stop()
}
