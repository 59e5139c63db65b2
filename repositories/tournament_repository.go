package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// TournamentRepository хранит группы, настройки и сетки турнира как JSONB
// и обновляет каждую колонку отдельной узкой операцией — турнир никогда не
// перезаписывается целиком.
type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	// GetForUpdate reads the tournament inside the caller's transaction
	// with a row lock. Every read-modify-write of the JSONB columns goes
	// through this, so concurrent writers serialize instead of clobbering.
	GetForUpdate(ctx context.Context, exec SQLExecutor, id string) (*models.Tournament, error)
	ListByEvent(ctx context.Context, eventID string) ([]*models.Tournament, error)
	UpdateName(ctx context.Context, id string, name string) error
	UpdateGroups(ctx context.Context, exec SQLExecutor, id string, groups []models.Group) error
	UpdateSettings(ctx context.Context, id string, settings models.TournamentSettings) error
	UpdatePlayoffBracket(ctx context.Context, exec SQLExecutor, id string, bracket *models.PlayoffBracket) error
	UpdateConsolationBracket(ctx context.Context, exec SQLExecutor, id string, bracket *models.PlayoffBracket) error
	Delete(ctx context.Context, id string) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	groupsJSON, err := json.Marshal(tournament.Groups)
	if err != nil {
		return fmt.Errorf("failed to marshal tournament groups: %w", err)
	}
	settingsJSON, err := json.Marshal(tournament.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal tournament settings: %w", err)
	}

	query := `
		INSERT INTO tournaments (id, event_id, name, groups, settings)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		tournament.ID,
		tournament.EventID,
		tournament.Name,
		groupsJSON,
		settingsJSON,
	).Scan(&tournament.CreatedAt)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `
		SELECT id, event_id, name, groups, settings, playoff_bracket, consolation_bracket, created_at
		FROM tournaments
		WHERE id = $1`

	return r.scanTournament(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresTournamentRepository) GetForUpdate(ctx context.Context, exec SQLExecutor, id string) (*models.Tournament, error) {
	query := `
		SELECT id, event_id, name, groups, settings, playoff_bracket, consolation_bracket, created_at
		FROM tournaments
		WHERE id = $1
		FOR UPDATE`

	return r.scanTournament(exec.QueryRowContext(ctx, query, id))
}

func (r *postgresTournamentRepository) scanTournament(row *sql.Row) (*models.Tournament, error) {
	tournament := &models.Tournament{}
	var groupsJSON, settingsJSON []byte
	var playoffJSON, consolationJSON []byte

	err := row.Scan(
		&tournament.ID,
		&tournament.EventID,
		&tournament.Name,
		&groupsJSON,
		&settingsJSON,
		&playoffJSON,
		&consolationJSON,
		&tournament.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to scan tournament: %w", err)
	}
	if err := unmarshalTournamentColumns(tournament, groupsJSON, settingsJSON, playoffJSON, consolationJSON); err != nil {
		return nil, err
	}
	return tournament, nil
}

func unmarshalTournamentColumns(t *models.Tournament, groupsJSON, settingsJSON, playoffJSON, consolationJSON []byte) error {
	if len(groupsJSON) > 0 {
		if err := json.Unmarshal(groupsJSON, &t.Groups); err != nil {
			return fmt.Errorf("failed to unmarshal groups for tournament %s: %w", t.ID, err)
		}
	}
	if len(settingsJSON) > 0 {
		if err := json.Unmarshal(settingsJSON, &t.Settings); err != nil {
			return fmt.Errorf("failed to unmarshal settings for tournament %s: %w", t.ID, err)
		}
	}
	if len(playoffJSON) > 0 {
		t.Playoff = &models.PlayoffBracket{}
		if err := json.Unmarshal(playoffJSON, t.Playoff); err != nil {
			return fmt.Errorf("failed to unmarshal playoff bracket for tournament %s: %w", t.ID, err)
		}
	}
	if len(consolationJSON) > 0 {
		t.Consolation = &models.PlayoffBracket{}
		if err := json.Unmarshal(consolationJSON, t.Consolation); err != nil {
			return fmt.Errorf("failed to unmarshal consolation bracket for tournament %s: %w", t.ID, err)
		}
	}
	return nil
}

func (r *postgresTournamentRepository) ListByEvent(ctx context.Context, eventID string) ([]*models.Tournament, error) {
	query := `
		SELECT id, event_id, name, groups, settings, playoff_bracket, consolation_bracket, created_at
		FROM tournaments
		WHERE event_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments for event %s: %w", eventID, err)
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		tournament := &models.Tournament{}
		var groupsJSON, settingsJSON, playoffJSON, consolationJSON []byte
		if scanErr := rows.Scan(
			&tournament.ID,
			&tournament.EventID,
			&tournament.Name,
			&groupsJSON,
			&settingsJSON,
			&playoffJSON,
			&consolationJSON,
			&tournament.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament row: %w", scanErr)
		}
		if err := unmarshalTournamentColumns(tournament, groupsJSON, settingsJSON, playoffJSON, consolationJSON); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, tournament)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament rows iteration: %w", err)
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) UpdateName(ctx context.Context, id string, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdateGroups(ctx context.Context, exec SQLExecutor, id string, groups []models.Group) error {
	groupsJSON, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("failed to marshal groups: %w", err)
	}
	result, err := exec.ExecContext(ctx, `UPDATE tournaments SET groups = $1 WHERE id = $2`, groupsJSON, id)
	if err != nil {
		return fmt.Errorf("UpdateGroups: failed to execute query for tournament %s: %w", id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdateSettings(ctx context.Context, id string, settings models.TournamentSettings) error {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	result, err := r.db.ExecContext(ctx, `UPDATE tournaments SET settings = $1 WHERE id = $2`, settingsJSON, id)
	if err != nil {
		return fmt.Errorf("UpdateSettings: failed to execute query for tournament %s: %w", id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdatePlayoffBracket(ctx context.Context, exec SQLExecutor, id string, bracket *models.PlayoffBracket) error {
	return r.updateBracketColumn(ctx, exec, "playoff_bracket", id, bracket)
}

func (r *postgresTournamentRepository) UpdateConsolationBracket(ctx context.Context, exec SQLExecutor, id string, bracket *models.PlayoffBracket) error {
	return r.updateBracketColumn(ctx, exec, "consolation_bracket", id, bracket)
}

func (r *postgresTournamentRepository) updateBracketColumn(ctx context.Context, exec SQLExecutor, column, id string, bracket *models.PlayoffBracket) error {
	var bracketJSON interface{}
	if bracket != nil {
		data, err := json.Marshal(bracket)
		if err != nil {
			return fmt.Errorf("failed to marshal bracket: %w", err)
		}
		bracketJSON = data
	}
	query := fmt.Sprintf(`UPDATE tournaments SET %s = $1 WHERE id = $2`, column)
	result, err := exec.ExecContext(ctx, query, bracketJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update %s for tournament %s: %w", column, id, err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}
