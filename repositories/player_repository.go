package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerEventInvalid = errors.New("player event conflict or invalid")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id string) (*models.Player, error)
	ListByEvent(ctx context.Context, eventID string, status *models.PlayerStatus) ([]*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	UpdateStatus(ctx context.Context, id string, status models.PlayerStatus) error
	UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error
	Delete(ctx context.Context, id string) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (id, event_id, name, contact, status, avatar_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		player.ID,
		player.EventID,
		player.Name,
		player.Contact,
		player.Status,
		player.AvatarKey,
	).Scan(&player.CreatedAt)

	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	query := `
		SELECT id, event_id, name, contact, status, avatar_key, created_at
		FROM players
		WHERE id = $1`

	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID,
		&player.EventID,
		&player.Name,
		&player.Contact,
		&player.Status,
		&player.AvatarKey,
		&player.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player by id %s: %w", id, err)
	}
	return player, nil
}

func (r *postgresPlayerRepository) ListByEvent(ctx context.Context, eventID string, status *models.PlayerStatus) ([]*models.Player, error) {
	query := `
		SELECT id, event_id, name, contact, status, avatar_key, created_at
		FROM players
		WHERE event_id = $1`
	args := []interface{}{eventID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players for event %s: %w", eventID, err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(
			&player.ID,
			&player.EventID,
			&player.Name,
			&player.Contact,
			&player.Status,
			&player.AvatarKey,
			&player.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		players = append(players, &player)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players
		SET name = $1, contact = $2, status = $3
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, player.Name, player.Contact, player.Status, player.ID)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdateStatus(ctx context.Context, id string, status models.PlayerStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET avatar_key = $1 WHERE id = $2`, avatarKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		if pqErr.Constraint == "players_event_id_fkey" {
			return ErrPlayerEventInvalid
		}
	}
	return err
}
