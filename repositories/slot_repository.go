package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

var (
	ErrSlotNotFound = errors.New("time slot not found")
	ErrSlotTaken    = errors.New("time slot is already booked")
)

// TimeSlotRepository управляет бронируемыми слотами. Book выполняет
// compare-and-swap: слот достаётся матчу только если он ещё свободен.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *models.TimeSlot) error
	GetByID(ctx context.Context, id string) (*models.TimeSlot, error)
	// GetForUpdate reads the slot inside the caller's transaction with a
	// row lock, so the book/unbook decision stays consistent.
	GetForUpdate(ctx context.Context, exec SQLExecutor, id string) (*models.TimeSlot, error)
	ListByEvent(ctx context.Context, eventID string) ([]*models.TimeSlot, error)
	Book(ctx context.Context, exec SQLExecutor, id string, matchID string) error
	Release(ctx context.Context, exec SQLExecutor, id string) error
	Delete(ctx context.Context, id string) error
}

type postgresTimeSlotRepository struct {
	db *sql.DB
}

func NewPostgresTimeSlotRepository(db *sql.DB) TimeSlotRepository {
	return &postgresTimeSlotRepository{db: db}
}

func (r *postgresTimeSlotRepository) Create(ctx context.Context, slot *models.TimeSlot) error {
	query := `
		INSERT INTO time_slots (id, event_id, starts_at, location, match_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		slot.ID,
		slot.EventID,
		slot.StartsAt,
		slot.Location,
		slot.MatchID,
	).Scan(&slot.CreatedAt)
}

func (r *postgresTimeSlotRepository) GetByID(ctx context.Context, id string) (*models.TimeSlot, error) {
	return scanSlotRow(r.db.QueryRowContext(ctx, `
		SELECT id, event_id, starts_at, location, match_id, created_at
		FROM time_slots
		WHERE id = $1`, id), id)
}

func (r *postgresTimeSlotRepository) GetForUpdate(ctx context.Context, exec SQLExecutor, id string) (*models.TimeSlot, error) {
	return scanSlotRow(exec.QueryRowContext(ctx, `
		SELECT id, event_id, starts_at, location, match_id, created_at
		FROM time_slots
		WHERE id = $1
		FOR UPDATE`, id), id)
}

func scanSlotRow(row *sql.Row, id string) (*models.TimeSlot, error) {
	slot := &models.TimeSlot{}
	err := row.Scan(
		&slot.ID,
		&slot.EventID,
		&slot.StartsAt,
		&slot.Location,
		&slot.MatchID,
		&slot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to scan time slot %s: %w", id, err)
	}
	return slot, nil
}

func (r *postgresTimeSlotRepository) ListByEvent(ctx context.Context, eventID string) ([]*models.TimeSlot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_id, starts_at, location, match_id, created_at
		FROM time_slots
		WHERE event_id = $1
		ORDER BY starts_at ASC, id ASC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query time slots for event %s: %w", eventID, err)
	}
	defer rows.Close()

	slots := make([]*models.TimeSlot, 0)
	for rows.Next() {
		var slot models.TimeSlot
		if scanErr := rows.Scan(
			&slot.ID,
			&slot.EventID,
			&slot.StartsAt,
			&slot.Location,
			&slot.MatchID,
			&slot.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan time slot row: %w", scanErr)
		}
		slots = append(slots, &slot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during time slot rows iteration: %w", err)
	}
	return slots, nil
}

// Book sets the match only when the slot is still free. Zero affected
// rows with an existing slot means a concurrent writer got there first.
func (r *postgresTimeSlotRepository) Book(ctx context.Context, exec SQLExecutor, id string, matchID string) error {
	result, err := exec.ExecContext(ctx, `
		UPDATE time_slots
		SET match_id = $1
		WHERE id = $2 AND match_id IS NULL`, matchID, id)
	if err != nil {
		return fmt.Errorf("Book: failed to execute query for slot %s: %w", id, err)
	}
	return checkAffectedRows(result, ErrSlotTaken)
}

func (r *postgresTimeSlotRepository) Release(ctx context.Context, exec SQLExecutor, id string) error {
	result, err := exec.ExecContext(ctx, `UPDATE time_slots SET match_id = NULL WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Release: failed to execute query for slot %s: %w", id, err)
	}
	return checkAffectedRows(result, ErrSlotNotFound)
}

func (r *postgresTimeSlotRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSlotNotFound)
}
