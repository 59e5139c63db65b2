package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/brackets"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
)

type RecordMatchResultInput struct {
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

type ScheduleMatchInput struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Location    *string   `json:"location"`
}

type MatchService interface {
	// GenerateMatches fills an empty group with one pending match per
	// unordered pair of members.
	GenerateMatches(ctx context.Context, tournamentID string, groupID string) (*models.Tournament, error)
	// RecordResult sets the score of a group match and marks it completed.
	// Re-recording an already completed match is allowed: standings are
	// recomputed from match data, so a correction needs no compensation.
	RecordResult(ctx context.Context, tournamentID string, groupID string, matchID string, input RecordMatchResultInput) (*models.Tournament, error)
	ScheduleMatch(ctx context.Context, tournamentID string, groupID string, matchID string, input ScheduleMatchInput) (*models.Tournament, error)
}

type matchService struct {
	db             *sql.DB
	tournamentRepo repositories.TournamentRepository
	hub            *brackets.Hub
	ids            models.IDGenerator
}

func NewMatchService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	hub *brackets.Hub,
	ids models.IDGenerator,
) MatchService {
	return &matchService{
		db:             db,
		tournamentRepo: tournamentRepo,
		hub:            hub,
		ids:            ids,
	}
}

func (s *matchService) GenerateMatches(ctx context.Context, tournamentID string, groupID string) (*models.Tournament, error) {
	var tournament *models.Tournament
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		locked, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		group := locked.Group(groupID)
		if group == nil {
			return ErrGroupNotFound
		}
		if len(group.Matches) > 0 {
			return ErrGroupMatchesExist
		}

		group.Matches = brackets.GenerateRoundRobinMatches(group, s.ids)
		if err := s.tournamentRepo.UpdateGroups(ctx, tx, tournamentID, locked.Groups); err != nil {
			return err
		}
		tournament = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tournament, nil
}

func (s *matchService) RecordResult(ctx context.Context, tournamentID string, groupID string, matchID string, input RecordMatchResultInput) (*models.Tournament, error) {
	if input.Score1 < 0 || input.Score2 < 0 {
		return nil, ErrScoresInvalid
	}

	var tournament *models.Tournament
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		locked, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		group := locked.Group(groupID)
		if group == nil {
			return ErrGroupNotFound
		}
		match := group.Match(matchID)
		if match == nil {
			return ErrMatchNotFound
		}

		score1, score2 := input.Score1, input.Score2
		match.Score1 = &score1
		match.Score2 = &score2
		match.Status = models.MatchStatusCompleted
		if err := s.tournamentRepo.UpdateGroups(ctx, tx, tournamentID, locked.Groups); err != nil {
			return err
		}
		tournament = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.hub.BroadcastToRoom(tournament.EventID, brackets.PushMessage{
		Type:   brackets.MsgStandingsUpdated,
		RoomID: tournament.EventID,
		Payload: map[string]string{
			"tournament_id": tournamentID,
			"group_id":      groupID,
			"match_id":      matchID,
		},
	})
	return tournament, nil
}

func (s *matchService) ScheduleMatch(ctx context.Context, tournamentID string, groupID string, matchID string, input ScheduleMatchInput) (*models.Tournament, error) {
	var tournament *models.Tournament
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		locked, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		group := locked.Group(groupID)
		if group == nil {
			return ErrGroupNotFound
		}
		match := group.Match(matchID)
		if match == nil {
			return ErrMatchNotFound
		}
		if match.Status == models.MatchStatusCompleted {
			return ErrMatchNotPending
		}

		at := input.ScheduledAt
		match.ScheduledAt = &at
		match.Location = input.Location
		match.Status = models.MatchStatusScheduled
		if err := s.tournamentRepo.UpdateGroups(ctx, tx, tournamentID, locked.Groups); err != nil {
			return err
		}
		tournament = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tournament, nil
}
