package weekly

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/airwave/airwave/internal/utils"
	"github.com/airwave/airwave/pkg/period"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type WeeklyHandler struct {
	service Service
	clock   utils.Clock
}

func NewWeeklyHandler(service Service, clock utils.Clock) *WeeklyHandler {
	return &WeeklyHandler{service, clock}
}

func (handler *WeeklyHandler) GetExpiring(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	periods, err := handler.service.ExpiringThisWeek(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	handler.writePeriods(w, periods)
}

func (handler *WeeklyHandler) GetBroadcasting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	periods, err := handler.service.BroadcastingThisWeek(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	handler.writePeriods(w, periods)
}

func (handler *WeeklyHandler) ToggleHandled(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	periodId := vars["periodId"]

	log.Debugf("Toggling expiration follow-up for period %s", periodId)
	updated, err := handler.service.ToggleExpirationHandled(r.Context(), periodId)
	if err != nil {
		if errors.Is(err, ErrPeriodNotFound) {
			http.Error(w, "Period not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(period.PeriodToDTO(updated, handler.clock.Now())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *WeeklyHandler) writePeriods(w http.ResponseWriter, periods []period.Period) {
	now := handler.clock.Now()
	periodsDTO := make([]period.PeriodDTO, 0, len(periods))
	for _, p := range periods {
		periodsDTO = append(periodsDTO, period.PeriodToDTO(p, now))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(periodsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
