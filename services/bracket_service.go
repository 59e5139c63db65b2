package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/brackets"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/standings"
)

type GenerateBracketInput struct {
	// Seeds holds player ids and brackets.Bye sentinels in slot order.
	// Length must be the bracket size for the entitled qualifier pool.
	Seeds []string `json:"seeds"`
}

type BracketService interface {
	// GenerateBracket builds a bracket from an explicit seed assignment.
	// Generation is one-time: an already generated bracket must be reset
	// before it can be rebuilt.
	GenerateBracket(ctx context.Context, tournamentID string, kind models.BracketKind, input GenerateBracketInput) (*models.PlayoffBracket, error)
	GetBracket(ctx context.Context, tournamentID string, kind models.BracketKind) (*models.PlayoffBracket, error)
	RecordResult(ctx context.Context, tournamentID string, kind models.BracketKind, matchID string, input RecordMatchResultInput) (*models.PlayoffBracket, error)
	ResetBracket(ctx context.Context, tournamentID string, kind models.BracketKind) error
}

type bracketService struct {
	db             *sql.DB
	tournamentRepo repositories.TournamentRepository
	hub            *brackets.Hub
	ids            models.IDGenerator
}

func NewBracketService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	hub *brackets.Hub,
	ids models.IDGenerator,
) BracketService {
	return &bracketService{
		db:             db,
		tournamentRepo: tournamentRepo,
		hub:            hub,
		ids:            ids,
	}
}

func (s *bracketService) GenerateBracket(ctx context.Context, tournamentID string, kind models.BracketKind, input GenerateBracketInput) (*models.PlayoffBracket, error) {
	var (
		bracket *models.PlayoffBracket
		eventID string
	)
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		eventID = tournament.EventID

		if existing := tournament.Bracket(kind); existing != nil && existing.IsGenerated {
			return ErrBracketAlreadyGenerated
		}
		if err := validateSeedPool(tournament, kind, input.Seeds); err != nil {
			return err
		}

		built, err := brackets.Build(input.Seeds, bronzeFinalFor(tournament, kind), s.ids)
		if err != nil {
			return err
		}
		if err := s.persistBracket(ctx, tx, tournamentID, kind, built); err != nil {
			return err
		}
		bracket = built
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastBracket(eventID, tournamentID, kind)
	return bracket, nil
}

func (s *bracketService) GetBracket(ctx context.Context, tournamentID string, kind models.BracketKind) (*models.PlayoffBracket, error) {
	tournament, err := s.getTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	bracket := tournament.Bracket(kind)
	if bracket == nil {
		return nil, brackets.ErrNotGenerated
	}
	return bracket, nil
}

func (s *bracketService) RecordResult(ctx context.Context, tournamentID string, kind models.BracketKind, matchID string, input RecordMatchResultInput) (*models.PlayoffBracket, error) {
	if input.Score1 < 0 || input.Score2 < 0 {
		return nil, ErrScoresInvalid
	}

	var (
		bracket *models.PlayoffBracket
		eventID string
	)
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		eventID = tournament.EventID

		locked := tournament.Bracket(kind)
		if locked == nil {
			return brackets.ErrNotGenerated
		}
		if err := brackets.RecordResult(locked, matchID, input.Score1, input.Score2, bronzeFinalFor(tournament, kind)); err != nil {
			return err
		}
		if err := s.persistBracket(ctx, tx, tournamentID, kind, locked); err != nil {
			return err
		}
		bracket = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastBracket(eventID, tournamentID, kind)
	return bracket, nil
}

func (s *bracketService) ResetBracket(ctx context.Context, tournamentID string, kind models.BracketKind) error {
	var eventID string
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		eventID = tournament.EventID

		bracket := tournament.Bracket(kind)
		if bracket == nil {
			return brackets.ErrNotGenerated
		}
		brackets.Reset(bracket)
		return s.persistBracket(ctx, tx, tournamentID, kind, bracket)
	})
	if err != nil {
		return err
	}

	s.broadcastBracket(eventID, tournamentID, kind)
	return nil
}

func (s *bracketService) getTournament(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s: %w", id, err)
	}
	return tournament, nil
}

func (s *bracketService) persistBracket(ctx context.Context, tx *sql.Tx, tournamentID string, kind models.BracketKind, bracket *models.PlayoffBracket) error {
	if kind == models.BracketKindConsolation {
		return s.tournamentRepo.UpdateConsolationBracket(ctx, tx, tournamentID, bracket)
	}
	return s.tournamentRepo.UpdatePlayoffBracket(ctx, tx, tournamentID, bracket)
}

func (s *bracketService) broadcastBracket(eventID, tournamentID string, kind models.BracketKind) {
	s.hub.BroadcastToRoom(eventID, brackets.PushMessage{
		Type:   brackets.MsgBracketUpdated,
		RoomID: eventID,
		Payload: map[string]string{
			"tournament_id": tournamentID,
			"bracket":       string(kind),
		},
	})
}

// bronzeFinalFor: the bronze final is a feature of the main playoff
// bracket, a consolation bracket never carries one.
func bronzeFinalFor(t *models.Tournament, kind models.BracketKind) bool {
	return kind == models.BracketKindPlayoff && t.Settings.HasBronzeFinal
}

// validateSeedPool checks the seed assignment against the players entitled
// by the tournament settings: the non-BYE seeds must be exactly the
// qualifier pool, each used once.
func validateSeedPool(t *models.Tournament, kind models.BracketKind, seeds []string) error {
	var pool []models.Qualifier
	if kind == models.BracketKindConsolation {
		pool = standings.SelectConsolation(t)
	} else {
		pool = standings.SelectQualifiers(t)
	}

	entitled := make(map[string]bool, len(pool))
	for _, q := range pool {
		entitled[q.PlayerID] = true
	}

	seeded := make(map[string]bool, len(seeds))
	for _, seed := range seeds {
		if seed == brackets.Bye || seed == "" {
			continue
		}
		if !entitled[seed] {
			return fmt.Errorf("%w: player %s is not entitled to the %s bracket", ErrValidationFailed, seed, kind)
		}
		if seeded[seed] {
			return fmt.Errorf("%w: player %s is seeded more than once", ErrValidationFailed, seed)
		}
		seeded[seed] = true
	}
	if len(seeded) != len(entitled) {
		return fmt.Errorf("%w: seed assignment covers %d of %d entitled players", ErrValidationFailed, len(seeded), len(entitled))
	}
	return nil
}
