package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Renderer turns report rows into one downloadable document.
type Renderer interface {
	Render(rows []Row) ([]byte, error)
	ContentType() string
	FileExtension() string
}

var reportHeader = []string{"#", "Client", "Label", "Music style", "Start date", "End date", "Playlist types", "Broadcast mode", "Status"}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

func (r *CsvRendererImpl) Render(rows []Row) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(reportHeader); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Number),
			row.ClientName,
			row.Label,
			row.MusicStyle,
			row.StartDate,
			row.EndDate,
			row.PlaylistTypes,
			row.BroadcastMode,
			row.Status,
		}
		if err := writer.Write(record); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return nil, err
	}

	return b.Bytes(), nil
}

func (r *CsvRendererImpl) ContentType() string {
	return "text/csv"
}

func (r *CsvRendererImpl) FileExtension() string {
	return "csv"
}
