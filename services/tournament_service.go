package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/standings"
)

type CreateTournamentInput struct {
	Name     string                     `json:"name"`
	Settings *models.TournamentSettings `json:"settings"`
}

type CreateGroupInput struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, eventID string, input CreateTournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error)
	ListTournamentsByEvent(ctx context.Context, eventID string) ([]*models.Tournament, error)
	RenameTournament(ctx context.Context, id string, name string) (*models.Tournament, error)
	UpdateSettings(ctx context.Context, id string, settings models.TournamentSettings) (*models.Tournament, error)
	AddGroup(ctx context.Context, tournamentID string, input CreateGroupInput) (*models.Tournament, error)
	UpdateGroup(ctx context.Context, tournamentID string, groupID string, input CreateGroupInput) (*models.Tournament, error)
	RemoveGroup(ctx context.Context, tournamentID string, groupID string) (*models.Tournament, error)
	// GetStandings recomputes the group table from its matches on every
	// call. Standings are never stored.
	GetStandings(ctx context.Context, tournamentID string, groupID string) ([]models.StandingsEntry, error)
	GetQualifiers(ctx context.Context, tournamentID string) ([]models.Qualifier, error)
	GetConsolationEntrants(ctx context.Context, tournamentID string) ([]models.Qualifier, error)
	DeleteTournament(ctx context.Context, id string) error
}

type tournamentService struct {
	db             *sql.DB
	tournamentRepo repositories.TournamentRepository
	eventRepo      repositories.EventRepository
	ids            models.IDGenerator
}

func NewTournamentService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	eventRepo repositories.EventRepository,
	ids models.IDGenerator,
) TournamentService {
	return &tournamentService{
		db:             db,
		tournamentRepo: tournamentRepo,
		eventRepo:      eventRepo,
		ids:            ids,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, eventID string, input CreateTournamentInput) (*models.Tournament, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: tournament name is required", ErrValidationFailed)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to check event %s: %w", eventID, err)
	}

	settings := defaultTournamentSettings()
	if input.Settings != nil {
		if err := validateSettings(*input.Settings); err != nil {
			return nil, err
		}
		settings = *input.Settings
	}

	tournament := &models.Tournament{
		ID:       s.ids.NewID(),
		EventID:  eventID,
		Name:     strings.TrimSpace(input.Name),
		Groups:   []models.Group{},
		Settings: settings,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) ListTournamentsByEvent(ctx context.Context, eventID string) ([]*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments for event %s: %w", eventID, err)
	}
	return tournaments, nil
}

func (s *tournamentService) RenameTournament(ctx context.Context, id string, name string) (*models.Tournament, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: tournament name is required", ErrValidationFailed)
	}
	if err := s.tournamentRepo.UpdateName(ctx, id, strings.TrimSpace(name)); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to rename tournament %s: %w", id, err)
	}
	return s.GetTournamentByID(ctx, id)
}

func (s *tournamentService) UpdateSettings(ctx context.Context, id string, settings models.TournamentSettings) (*models.Tournament, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}
	if err := s.tournamentRepo.UpdateSettings(ctx, id, settings); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to update settings for tournament %s: %w", id, err)
	}
	return s.GetTournamentByID(ctx, id)
}

func (s *tournamentService) AddGroup(ctx context.Context, tournamentID string, input CreateGroupInput) (*models.Tournament, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrGroupNameRequired
	}

	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		tournament.Groups = append(tournament.Groups, models.Group{
			ID:        s.ids.NewID(),
			Name:      strings.TrimSpace(input.Name),
			PlayerIDs: dedupIDs(input.PlayerIDs),
			Matches:   []models.Match{},
		})
		return s.tournamentRepo.UpdateGroups(ctx, tx, tournamentID, tournament.Groups)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTournamentByID(ctx, tournamentID)
}

func (s *tournamentService) UpdateGroup(ctx context.Context, tournamentID string, groupID string, input CreateGroupInput) (*models.Tournament, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrGroupNameRequired
	}

	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		group := tournament.Group(groupID)
		if group == nil {
			return ErrGroupNotFound
		}
		// Removing a player leaves their completed matches in place; the
		// standings calculator drops rows for players no longer listed.
		group.Name = strings.TrimSpace(input.Name)
		group.PlayerIDs = dedupIDs(input.PlayerIDs)
		return s.tournamentRepo.UpdateGroups(ctx, tx, tournamentID, tournament.Groups)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTournamentByID(ctx, tournamentID)
}

func (s *tournamentService) RemoveGroup(ctx context.Context, tournamentID string, groupID string) (*models.Tournament, error) {
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		kept := tournament.Groups[:0]
		found := false
		for _, g := range tournament.Groups {
			if g.ID == groupID {
				found = true
				continue
			}
			kept = append(kept, g)
		}
		if !found {
			return ErrGroupNotFound
		}
		return s.tournamentRepo.UpdateGroups(ctx, tx, tournamentID, kept)
	})
	if err != nil {
		return nil, err
	}
	return s.GetTournamentByID(ctx, tournamentID)
}

func (s *tournamentService) GetStandings(ctx context.Context, tournamentID string, groupID string) ([]models.StandingsEntry, error) {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	group := tournament.Group(groupID)
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return standings.Calculate(group, &tournament.Settings), nil
}

func (s *tournamentService) GetQualifiers(ctx context.Context, tournamentID string) ([]models.Qualifier, error) {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return standings.SelectQualifiers(tournament), nil
}

func (s *tournamentService) GetConsolationEntrants(ctx context.Context, tournamentID string) ([]models.Qualifier, error) {
	tournament, err := s.GetTournamentByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return standings.SelectConsolation(tournament), nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id string) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %s: %w", id, err)
	}
	return nil
}

func defaultTournamentSettings() models.TournamentSettings {
	return models.TournamentSettings{
		PointsPerDraw: 1,
		PointRules: []models.PointRule{
			{MinDiff: 1, MaxDiff: 999, WinnerPoints: 3, LoserPoints: 0},
		},
		TieBreakers: []models.TieBreaker{
			models.TieBreakerHeadToHead,
			models.TieBreakerGoalDifference,
			models.TieBreakerGoalsFor,
		},
	}
}

func validateSettings(settings models.TournamentSettings) error {
	if settings.PointsPerDraw < 0 {
		return fmt.Errorf("%w: points per draw must not be negative", ErrValidationFailed)
	}
	for _, rule := range settings.PointRules {
		if rule.MinDiff < 0 || rule.MaxDiff < rule.MinDiff {
			return fmt.Errorf("%w: point rule range [%d, %d] is invalid", ErrValidationFailed, rule.MinDiff, rule.MaxDiff)
		}
	}
	for groupID, ps := range settings.PlayoffSettings {
		if ps.NumQualifiers < 0 {
			return fmt.Errorf("%w: negative qualifier count for group %s", ErrValidationFailed, groupID)
		}
	}
	for groupID, cs := range settings.ConsolationSettings {
		if cs.IsUnset() {
			continue
		}
		if cs.StartRank < 1 || cs.EndRank < cs.StartRank {
			return fmt.Errorf("%w: consolation rank range [%d, %d] is invalid for group %s", ErrValidationFailed, cs.StartRank, cs.EndRank, groupID)
		}
	}
	return nil
}

func dedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
