package jobs

import (
	"context"
	"log/slog"

	"transportes/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// FleetReportJob periodically logs a snapshot of the fleet so operators can
// see free vehicles, idle drivers, and open orders without querying the API.
type FleetReportJob struct {
	vehiculosLibresHandler         queries.GetVehiculosLibresQueryHandler
	conductoresSinVehiculosHandler queries.GetConductoresSinVehiculosQueryHandler
	pedidosActivosHandler          queries.GetPedidosActivosQueryHandler
	schedule                       string
	cron                           *cron.Cron
	logger                         *slog.Logger
}

// NewFleetReportJob creates a job that reports the fleet snapshot on the
// given cron schedule.
func NewFleetReportJob(
	vehiculosLibresHandler queries.GetVehiculosLibresQueryHandler,
	conductoresSinVehiculosHandler queries.GetConductoresSinVehiculosQueryHandler,
	pedidosActivosHandler queries.GetPedidosActivosQueryHandler,
	schedule string,
	logger *slog.Logger,
) *FleetReportJob {
	return &FleetReportJob{
		vehiculosLibresHandler:         vehiculosLibresHandler,
		conductoresSinVehiculosHandler: conductoresSinVehiculosHandler,
		pedidosActivosHandler:          pedidosActivosHandler,
		schedule:                       schedule,
		cron:                           cron.New(cron.WithSeconds()),
		logger:                         logger.With("component", "fleet_report_job"),
	}
}

// Start begins the fleet report job on its configured schedule.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Fleet report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the fleet report job.
func (j *FleetReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}

func (j *FleetReportJob) report() {
	ctx := context.Background()

	libres, err := j.vehiculosLibresHandler.Handle(ctx, queries.NewGetVehiculosLibresQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet report failed to load free vehicles", "error", err)
		return
	}

	disponibles, err := j.conductoresSinVehiculosHandler.Handle(
		ctx, queries.NewGetConductoresSinVehiculosQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet report failed to load idle drivers", "error", err)
		return
	}

	activos, err := j.pedidosActivosHandler.Handle(ctx, queries.NewGetPedidosActivosQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet report failed to load open orders", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Fleet snapshot",
		"vehiculos_libres", len(libres),
		"conductores_disponibles", len(disponibles),
		"pedidos_activos", len(activos),
	)
}
