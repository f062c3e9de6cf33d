package period

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrPeriodNotFound = errors.New("period not found")

type PeriodRepo interface {
	// Store stores a new Period and returns the assigned id
	Store(ctx context.Context, period Period) (string, error)
	FindAll(ctx context.Context) ([]Period, error)
	FindById(ctx context.Context, id string) (Period, error)
	Update(ctx context.Context, period Period) (bool, error)
	SetExpirationHandled(ctx context.Context, id string, handled bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteByClient removes all periods of a client. Rows written before the
	// client ids were backfilled reference the client by name only, so both
	// keys are matched.
	DeleteByClient(ctx context.Context, clientId string, clientName string) (int, error)
}

type PeriodRepoImpl struct {
	db *pgxpool.Pool
}

func NewPeriodRepo(db *pgxpool.Pool) *PeriodRepoImpl {
	return &PeriodRepoImpl{db: db}
}

const periodColumns = `id, client_id, client_name, label, music_style, start_date, end_date,
		playlist_types, broadcast_mode, status, expiration_handled, created_at`

func (r *PeriodRepoImpl) Store(ctx context.Context, period Period) (string, error) {
	query := `INSERT INTO periods (` + periodColumns + `)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	id := uuid.NewString()
	_, err := r.db.Exec(ctx, query,
		id,
		period.ClientId,
		period.ClientName,
		period.Label,
		period.MusicStyle,
		period.StartDate,
		period.EndDate,
		period.PlaylistTypes,
		period.BroadcastMode,
		period.NominalStatus,
		period.ExpirationHandled,
		period.CreatedAt,
	)
	if err != nil {
		err := fmt.Errorf("could not store period: %w", err)
		log.Error(err)
		return "", err
	}

	return id, nil
}

func (r *PeriodRepoImpl) FindAll(ctx context.Context) ([]Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query periods: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var periods []Period
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return periods, nil
}

func (r *PeriodRepoImpl) FindById(ctx context.Context, id string) (Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)

	period, err := scanPeriod(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Period{}, ErrPeriodNotFound
		}
		log.Error(err)
		return Period{}, err
	}
	return period, nil
}

func (r *PeriodRepoImpl) Update(ctx context.Context, period Period) (bool, error) {
	query := `UPDATE periods SET
				client_id = $1,
				client_name = $2,
				label = $3,
				music_style = $4,
				start_date = $5,
				end_date = $6,
				playlist_types = $7,
				broadcast_mode = $8,
				status = $9,
				expiration_handled = $10
			WHERE id = $11`
	result, err := r.db.Exec(ctx, query,
		period.ClientId,
		period.ClientName,
		period.Label,
		period.MusicStyle,
		period.StartDate,
		period.EndDate,
		period.PlaylistTypes,
		period.BroadcastMode,
		period.NominalStatus,
		period.ExpirationHandled,
		period.Id,
	)
	if err != nil {
		err := fmt.Errorf("could not update period: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *PeriodRepoImpl) SetExpirationHandled(ctx context.Context, id string, handled bool) (bool, error) {
	query := `UPDATE periods SET expiration_handled = $1 WHERE id = $2`
	result, err := r.db.Exec(ctx, query, handled, id)
	if err != nil {
		err := fmt.Errorf("could not update expiration flag: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *PeriodRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM periods WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not delete period: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *PeriodRepoImpl) DeleteByClient(ctx context.Context, clientId string, clientName string) (int, error) {
	query := `DELETE FROM periods WHERE client_id = $1 OR client_name = $2`
	result, err := r.db.Exec(ctx, query, clientId, clientName)
	if err != nil {
		err := fmt.Errorf("could not delete periods of client %s: %w", clientId, err)
		log.Error(err)
		return 0, err
	}
	return int(result.RowsAffected()), nil
}

func scanPeriod(row pgx.Row) (Period, error) {
	var period Period
	if err := row.Scan(
		&period.Id,
		&period.ClientId,
		&period.ClientName,
		&period.Label,
		&period.MusicStyle,
		&period.StartDate,
		&period.EndDate,
		&period.PlaylistTypes,
		&period.BroadcastMode,
		&period.NominalStatus,
		&period.ExpirationHandled,
		&period.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Period{}, err
		}
		return Period{}, fmt.Errorf("could not scan period: %w", err)
	}
	return period, nil
}
