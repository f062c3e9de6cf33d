package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ClientDTO struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	MusicStyle    string    `json:"musicStyle"`
	Status        string    `json:"status"`
	ActivePeriods int       `json:"activePeriods"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ClientHandler struct {
	service Service
}

func NewClientHandler(service Service) *ClientHandler {
	return &ClientHandler{service}
}

func (handler *ClientHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new client")
	w.Header().Set("Content-Type", "application/json")

	var clientDTO ClientDTO
	if err := json.NewDecoder(r.Body).Decode(&clientDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), DTOToClient(clientDTO))
	if err != nil {
		if errors.Is(err, ErrInvalidClient) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrNameAlreadyUsed) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ClientToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ClientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	overviews, err := handler.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	clientsDTO := make([]ClientDTO, 0, len(overviews))
	for _, overview := range overviews {
		dto := ClientToDTO(overview.Client)
		dto.ActivePeriods = overview.ActivePeriods
		clientsDTO = append(clientsDTO, dto)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(clientsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	clientId := vars["id"]

	var clientDTO ClientDTO
	if err := json.NewDecoder(r.Body).Decode(&clientDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if clientDTO.Id == "" || clientDTO.Id != clientId {
		http.Error(w, "Invalid client id in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Update(r.Context(), DTOToClient(clientDTO))
	if err != nil {
		if errors.Is(err, ErrInvalidClient) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Client not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(clientDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientId := vars["id"]

	ok, err := handler.service.Delete(r.Context(), clientId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Client not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ClientToDTO(client Client) ClientDTO {
	return ClientDTO{
		Id:         client.Id,
		Name:       client.Name,
		MusicStyle: client.MusicStyle,
		Status:     string(client.Status),
		CreatedAt:  client.CreatedAt,
	}
}

func DTOToClient(dto ClientDTO) Client {
	return Client{
		Id:         dto.Id,
		Name:       dto.Name,
		MusicStyle: dto.MusicStyle,
		Status:     ClientStatus(dto.Status),
	}
}
