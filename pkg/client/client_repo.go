package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrClientNotFound = errors.New("client not found")
var ErrNameAlreadyUsed = errors.New("client name already used")

type ClientRepo interface {
	// Store stores a new Client and returns the assigned id
	Store(ctx context.Context, client Client) (string, error)
	FindAll(ctx context.Context) ([]Client, error)
	FindById(ctx context.Context, id string) (Client, error)
	Update(ctx context.Context, client Client) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ClientRepoImpl struct {
	db *pgxpool.Pool
}

func NewClientRepo(db *pgxpool.Pool) *ClientRepoImpl {
	return &ClientRepoImpl{db: db}
}

func (r *ClientRepoImpl) Store(ctx context.Context, client Client) (string, error) {
	query := `INSERT INTO clients (id, name, music_style, status, created_at)
				VALUES ($1, $2, $3, $4, $5)`

	id := uuid.NewString()
	_, err := r.db.Exec(ctx, query,
		id,
		client.Name,
		client.MusicStyle,
		client.Status,
		client.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrNameAlreadyUsed
		}
		err := fmt.Errorf("could not store client: %w", err)
		log.Error(err)
		return "", err
	}

	return id, nil
}

func (r *ClientRepoImpl) FindAll(ctx context.Context) ([]Client, error) {
	query := `SELECT id, name, music_style, status, created_at FROM clients ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query clients: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var client Client
		if err := rows.Scan(
			&client.Id,
			&client.Name,
			&client.MusicStyle,
			&client.Status,
			&client.CreatedAt,
		); err != nil {
			err := fmt.Errorf("could not scan client: %w", err)
			log.Error(err)
			return nil, err
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return clients, nil
}

func (r *ClientRepoImpl) FindById(ctx context.Context, id string) (Client, error) {
	query := `SELECT id, name, music_style, status, created_at FROM clients WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)

	var client Client
	err := row.Scan(
		&client.Id,
		&client.Name,
		&client.MusicStyle,
		&client.Status,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, ErrClientNotFound
		}
		err := fmt.Errorf("could not scan client: %w", err)
		log.Error(err)
		return Client{}, err
	}
	return client, nil
}

func (r *ClientRepoImpl) Update(ctx context.Context, client Client) (bool, error) {
	query := `UPDATE clients SET name = $1, music_style = $2, status = $3 WHERE id = $4`
	result, err := r.db.Exec(ctx, query,
		client.Name,
		client.MusicStyle,
		client.Status,
		client.Id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, ErrNameAlreadyUsed
		}
		err := fmt.Errorf("could not update client: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *ClientRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM clients WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not delete client: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
