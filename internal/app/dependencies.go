package app

import (
	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/client"
	"github.com/airwave/airwave/pkg/importer"
	"github.com/airwave/airwave/pkg/period"
	"github.com/airwave/airwave/pkg/report"
	"github.com/airwave/airwave/pkg/stats"
	"github.com/airwave/airwave/pkg/weekly"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	ClientRepo    client.ClientRepo
	ClientService client.Service
	ClientHandler *client.ClientHandler

	PeriodRepo    period.PeriodRepo
	PeriodService period.Service
	PeriodHandler *period.PeriodHandler

	WeeklyService weekly.Service
	WeeklyHandler *weekly.WeeklyHandler

	ReportHandler *report.ReportHandler

	ImporterService importer.Service
	ImporterHandler *importer.ImporterHandler

	StatsService stats.Service
	StatsHandler *stats.StatsHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool) *Dependencies {
	deps := &Dependencies{}
	deps.Clock = &utils.SystemClock{}

	deps.ClientRepo = client.NewClientRepo(db)
	deps.PeriodRepo = period.NewPeriodRepo(db)

	// periods resolve their owning client through the repo, clients count and
	// cascade periods through the period service
	deps.PeriodService = period.NewService(deps.PeriodRepo, deps.ClientRepo, deps.Clock)
	deps.PeriodHandler = period.NewPeriodHandler(deps.PeriodService, deps.Clock)

	deps.ClientService = client.NewService(deps.ClientRepo, deps.PeriodService, deps.Clock)
	deps.ClientHandler = client.NewClientHandler(deps.ClientService)

	deps.WeeklyService = weekly.NewService(deps.PeriodService, deps.Clock)
	deps.WeeklyHandler = weekly.NewWeeklyHandler(deps.WeeklyService, deps.Clock)

	deps.ReportHandler = report.NewReportHandler(deps.PeriodService, deps.Clock)

	deps.ImporterService = importer.NewService(deps.ClientService)
	deps.ImporterHandler = importer.NewImporterHandler(deps.ImporterService)

	deps.StatsService = stats.NewService(deps.ClientService, deps.PeriodService, deps.Clock)
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService)

	return deps
}
