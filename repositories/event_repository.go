package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, name, description, organizer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.OrganizerID,
	).Scan(&event.CreatedAt)
}

func (r *postgresEventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `
		SELECT id, name, description, organizer_id, created_at
		FROM events
		WHERE id = $1`

	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.OrganizerID,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to scan event by id %s: %w", id, err)
	}
	return event, nil
}

func (r *postgresEventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*models.Event, error) {
	query := `
		SELECT id, name, description, organizer_id, created_at
		FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for organizer %s: %w", organizerID, err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		var event models.Event
		if scanErr := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.OrganizerID,
			&event.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", scanErr)
		}
		events = append(events, &event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during event rows iteration: %w", err)
	}
	return events, nil
}

func (r *postgresEventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET name = $1, description = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, event.Name, event.Description, event.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventNotFound)
}

func (r *postgresEventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventNotFound)
}
