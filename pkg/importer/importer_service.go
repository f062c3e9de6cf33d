package importer

import (
	"context"
	"errors"
	"io"

	"github.com/airwave/airwave/pkg/client"
	log "github.com/sirupsen/logrus"
)

// ClientCreator is the slice of the client feature the import needs.
type ClientCreator interface {
	Create(ctx context.Context, c client.Client) (client.Client, error)
}

// Result reports what a completed import did.
type Result struct {
	Imported int
	Rejected []Row
}

type Service interface {
	// Preview parses the file and reports per-row validity without writing.
	Preview(r io.Reader) ([]Row, error)
	// Import commits every valid row as a client. Rows rejected during
	// parsing, and rows the client service refuses (duplicate names), are
	// returned in Result.Rejected.
	Import(ctx context.Context, r io.Reader) (Result, error)
}

type ServiceImpl struct {
	clients ClientCreator
}

func NewService(clients ClientCreator) *ServiceImpl {
	return &ServiceImpl{clients: clients}
}

func (s *ServiceImpl) Preview(r io.Reader) ([]Row, error) {
	return Preview(r)
}

func (s *ServiceImpl) Import(ctx context.Context, r io.Reader) (Result, error) {
	rows, err := Preview(r)
	if err != nil {
		return Result{}, err
	}

	result := Result{Rejected: make([]Row, 0)}
	for _, row := range rows {
		if !row.Valid {
			result.Rejected = append(result.Rejected, row)
			continue
		}

		_, err := s.clients.Create(ctx, client.Client{
			Name:       row.Name,
			MusicStyle: row.MusicStyle,
		})
		if err != nil {
			if errors.Is(err, client.ErrNameAlreadyUsed) || errors.Is(err, client.ErrInvalidClient) {
				row.Valid = false
				row.Reasons = append(row.Reasons, err.Error())
				result.Rejected = append(result.Rejected, row)
				continue
			}
			log.Errorf("client import aborted at line %d: %v", row.Line, err)
			return Result{}, err
		}
		result.Imported++
	}
	return result, nil
}
