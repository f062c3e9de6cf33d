package stats

import (
	"encoding/json"
	"net/http"
)

type SummaryDTO struct {
	TotalClients       int    `json:"totalClients"`
	ScheduledPeriods   int    `json:"scheduledPeriods"`
	ActivePeriods      int    `json:"activePeriods"`
	CompletedPeriods   int    `json:"completedPeriods"`
	CreatedThisWeek    int    `json:"createdThisWeek"`
	CreatedByWeekday   [7]int `json:"createdByWeekday"`
	ClientsWithAirtime int    `json:"clientsWithAirtime"`
}

type StatsHandler struct {
	service Service
}

func NewStatsHandler(service Service) *StatsHandler {
	return &StatsHandler{service}
}

func (handler *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := handler.service.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryDTO{
		TotalClients:       summary.TotalClients,
		ScheduledPeriods:   summary.ScheduledPeriods,
		ActivePeriods:      summary.ActivePeriods,
		CompletedPeriods:   summary.CompletedPeriods,
		CreatedThisWeek:    summary.CreatedThisWeek,
		CreatedByWeekday:   summary.CreatedByWeekday,
		ClientsWithAirtime: summary.ClientsWithAirtime,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
