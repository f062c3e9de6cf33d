package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/airwave/airwave/internal/rest"
	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/period"
	log "github.com/sirupsen/logrus"
)

// PeriodLister is the slice of the period feature the report needs.
type PeriodLister interface {
	List(ctx context.Context) ([]period.Period, error)
}

type ReportHandler struct {
	periods   PeriodLister
	renderers map[string]Renderer
	clock     utils.Clock
}

func NewReportHandler(periods PeriodLister, clock utils.Clock) *ReportHandler {
	return &ReportHandler{
		periods: periods,
		renderers: map[string]Renderer{
			"csv":  NewCsvRenderer(),
			"xlsx": NewXlsxRenderer(),
		},
		clock: clock,
	}
}

func (handler *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	renderer, exists := handler.renderers[format]
	if !exists {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Unknown report format",
			Details: fmt.Sprintf("format %q is not supported, use csv or xlsx", format),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	opts, err := parseOptions(r.URL.Query().Get("sortBy"), r.URL.Query().Get("statuses"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid report options",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	periods, err := handler.periods.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := handler.clock.Now()
	rows := BuildReport(periods, now, opts)
	document, err := renderer.Render(rows)
	if err != nil {
		log.Errorf("Error rendering %s report: %v", format, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("schedules-report-%s.%s", now.Format("2006-01-02"), renderer.FileExtension())
	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(document); err != nil {
		log.Errorf("Error writing report response: %v", err)
	}
}

func parseOptions(sortBy string, statuses string) (Options, error) {
	opts := Options{SortBy: SortByStartDate}
	switch SortBy(sortBy) {
	case "":
	case SortByClient, SortByStartDate, SortByStatus:
		opts.SortBy = SortBy(sortBy)
	default:
		return Options{}, fmt.Errorf("unknown sort key %q", sortBy)
	}

	if statuses == "" || statuses == "all" {
		return opts, nil
	}
	for _, raw := range strings.Split(statuses, ",") {
		status := period.Status(strings.TrimSpace(raw))
		if !period.IsKnownStatus(status) {
			return Options{}, fmt.Errorf("unknown status %q", raw)
		}
		opts.Statuses = append(opts.Statuses, status)
	}
	return opts, nil
}
