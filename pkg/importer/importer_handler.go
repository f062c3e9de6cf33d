package importer

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type RowDTO struct {
	Line       int      `json:"line"`
	Name       string   `json:"name"`
	MusicStyle string   `json:"musicStyle"`
	Valid      bool     `json:"valid"`
	Reasons    []string `json:"reasons,omitempty"`
}

type ResultDTO struct {
	Imported int      `json:"imported"`
	Rejected []RowDTO `json:"rejected"`
}

type ImporterHandler struct {
	service Service
}

func NewImporterHandler(service Service) *ImporterHandler {
	return &ImporterHandler{service}
}

func (handler *ImporterHandler) Preview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rows, err := handler.service.Preview(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rowsDTO := make([]RowDTO, 0, len(rows))
	for _, row := range rows {
		rowsDTO = append(rowsDTO, rowToDTO(row))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rowsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ImporterHandler) Import(w http.ResponseWriter, r *http.Request) {
	log.Debug("Importing clients from csv upload")
	w.Header().Set("Content-Type", "application/json")

	result, err := handler.service.Import(r.Context(), r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rejected := make([]RowDTO, 0, len(result.Rejected))
	for _, row := range result.Rejected {
		rejected = append(rejected, rowToDTO(row))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ResultDTO{Imported: result.Imported, Rejected: rejected}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func rowToDTO(row Row) RowDTO {
	return RowDTO{
		Line:       row.Line,
		Name:       row.Name,
		MusicStyle: row.MusicStyle,
		Valid:      row.Valid,
		Reasons:    row.Reasons,
	}
}
