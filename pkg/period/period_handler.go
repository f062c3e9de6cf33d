package period

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/airwave/airwave/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PeriodDTO struct {
	Id                string    `json:"id"`
	ClientId          string    `json:"clientId"`
	ClientName        string    `json:"clientName,omitempty"`
	Label             string    `json:"label,omitempty"`
	MusicStyle        string    `json:"musicStyle,omitempty"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate"`
	PlaylistTypes     []string  `json:"playlistTypes"`
	BroadcastMode     string    `json:"broadcastMode"`
	Status            string    `json:"status"`
	EffectiveStatus   string    `json:"effectiveStatus,omitempty"`
	ExpirationHandled bool      `json:"expirationHandled"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CreateScheduleDTO creates one or more periods for a client in a single
// request, the way the scheduling form submits them.
type CreateScheduleDTO struct {
	ClientId string      `json:"clientId"`
	Periods  []PeriodDTO `json:"periods"`
}

type PeriodHandler struct {
	service Service
	clock   utils.Clock
}

func NewPeriodHandler(service Service, clock utils.Clock) *PeriodHandler {
	return &PeriodHandler{service, clock}
}

func (handler *PeriodHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new broadcast periods")
	w.Header().Set("Content-Type", "application/json")

	var scheduleDTO CreateScheduleDTO
	if err := json.NewDecoder(r.Body).Decode(&scheduleDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(scheduleDTO.Periods) == 0 {
		http.Error(w, "At least one period is required", http.StatusBadRequest)
		return
	}

	now := handler.clock.Now()
	createdDTOs := make([]PeriodDTO, 0, len(scheduleDTO.Periods))
	for i, periodDTO := range scheduleDTO.Periods {
		period := DTOToPeriod(periodDTO)
		period.ClientId = scheduleDTO.ClientId
		if period.Label == "" {
			period.Label = fmt.Sprintf("Period %d", i+1)
		}

		created, err := handler.service.Create(r.Context(), period)
		if err != nil {
			if errors.Is(err, ErrInvalidPeriod) || errors.Is(err, ErrUnknownClient) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		createdDTOs = append(createdDTOs, PeriodToDTO(created, now))
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(createdDTOs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *PeriodHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	periods, err := handler.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := handler.clock.Now()
	periodsDTO := make([]PeriodDTO, 0, len(periods))
	for _, period := range periods {
		periodsDTO = append(periodsDTO, PeriodToDTO(period, now))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(periodsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *PeriodHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	periodId := vars["id"]

	var periodDTO PeriodDTO
	if err := json.NewDecoder(r.Body).Decode(&periodDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if periodDTO.Id == "" || periodDTO.Id != periodId {
		http.Error(w, "Invalid period id in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Update(r.Context(), DTOToPeriod(periodDTO))
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Period not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(periodDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *PeriodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	periodId := vars["id"]

	ok, err := handler.service.Delete(r.Context(), periodId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Period not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func PeriodToDTO(period Period, now time.Time) PeriodDTO {
	return PeriodDTO{
		Id:                period.Id,
		ClientId:          period.ClientId,
		ClientName:        period.ClientName,
		Label:             period.Label,
		MusicStyle:        period.MusicStyle,
		StartDate:         period.StartDate,
		EndDate:           period.EndDate,
		PlaylistTypes:     period.PlaylistTypes,
		BroadcastMode:     string(period.BroadcastMode),
		Status:            string(period.NominalStatus),
		EffectiveStatus:   string(EffectiveStatus(period, now)),
		ExpirationHandled: period.ExpirationHandled,
		CreatedAt:         period.CreatedAt,
	}
}

func DTOToPeriod(dto PeriodDTO) Period {
	return Period{
		Id:                dto.Id,
		ClientId:          dto.ClientId,
		ClientName:        dto.ClientName,
		Label:             dto.Label,
		MusicStyle:        dto.MusicStyle,
		StartDate:         dto.StartDate,
		EndDate:           dto.EndDate,
		PlaylistTypes:     dto.PlaylistTypes,
		BroadcastMode:     BroadcastMode(dto.BroadcastMode),
		NominalStatus:     Status(dto.Status),
		ExpirationHandled: dto.ExpirationHandled,
	}
}
