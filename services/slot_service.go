package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/brackets"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
)

type CreateSlotInput struct {
	StartsAt time.Time `json:"starts_at"`
	Location *string   `json:"location"`
}

type BookSlotInput struct {
	TournamentID string `json:"tournament_id"`
	GroupID      string `json:"group_id"`
	MatchID      string `json:"match_id"`
}

type SlotService interface {
	CreateSlot(ctx context.Context, eventID string, input CreateSlotInput) (*models.TimeSlot, error)
	ListSlotsByEvent(ctx context.Context, eventID string) ([]*models.TimeSlot, error)
	// BookSlot binds a free slot to a pending group match. The slot row is
	// claimed with a conditional update, so of two concurrent bookings of
	// the same slot exactly one succeeds and the other gets
	// ErrSlotAlreadyBooked without retry.
	BookSlot(ctx context.Context, slotID string, input BookSlotInput) (*models.TimeSlot, error)
	ReleaseSlot(ctx context.Context, slotID string, tournamentID string, groupID string) error
	DeleteSlot(ctx context.Context, slotID string) error
}

type slotService struct {
	db             *sql.DB
	slotRepo       repositories.TimeSlotRepository
	tournamentRepo repositories.TournamentRepository
	eventRepo      repositories.EventRepository
	hub            *brackets.Hub
	ids            models.IDGenerator
}

func NewSlotService(
	db *sql.DB,
	slotRepo repositories.TimeSlotRepository,
	tournamentRepo repositories.TournamentRepository,
	eventRepo repositories.EventRepository,
	hub *brackets.Hub,
	ids models.IDGenerator,
) SlotService {
	return &slotService{
		db:             db,
		slotRepo:       slotRepo,
		tournamentRepo: tournamentRepo,
		eventRepo:      eventRepo,
		hub:            hub,
		ids:            ids,
	}
}

func (s *slotService) CreateSlot(ctx context.Context, eventID string, input CreateSlotInput) (*models.TimeSlot, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to check event %s: %w", eventID, err)
	}

	slot := &models.TimeSlot{
		ID:       s.ids.NewID(),
		EventID:  eventID,
		StartsAt: input.StartsAt,
		Location: input.Location,
	}
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create time slot: %w", err)
	}
	return slot, nil
}

func (s *slotService) ListSlotsByEvent(ctx context.Context, eventID string) ([]*models.TimeSlot, error) {
	slots, err := s.slotRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots for event %s: %w", eventID, err)
	}
	return slots, nil
}

func (s *slotService) BookSlot(ctx context.Context, slotID string, input BookSlotInput) (*models.TimeSlot, error) {
	var (
		booked  *models.TimeSlot
		eventID string
	)
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		slot, err := s.lockSlot(ctx, tx, slotID)
		if err != nil {
			return err
		}
		if slot.IsBooked() {
			return ErrSlotAlreadyBooked
		}

		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, input.TournamentID)
		if err != nil {
			return err
		}
		eventID = tournament.EventID

		group := tournament.Group(input.GroupID)
		if group == nil {
			return ErrGroupNotFound
		}
		match := group.Match(input.MatchID)
		if match == nil {
			return ErrMatchNotFound
		}
		if match.Status == models.MatchStatusCompleted {
			return ErrMatchNotPending
		}
		if match.SlotID != nil {
			return ErrMatchHasSlot
		}

		if err := s.slotRepo.Book(ctx, tx, slotID, input.MatchID); err != nil {
			if errors.Is(err, repositories.ErrSlotTaken) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("failed to book slot %s: %w", slotID, err)
		}

		startsAt := slot.StartsAt
		match.SlotID = &slot.ID
		match.ScheduledAt = &startsAt
		match.Location = slot.Location
		match.Status = models.MatchStatusScheduled
		if err := s.tournamentRepo.UpdateGroups(ctx, tx, input.TournamentID, tournament.Groups); err != nil {
			return err
		}

		matchID := input.MatchID
		slot.MatchID = &matchID
		booked = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.hub.BroadcastToRoom(eventID, brackets.PushMessage{
		Type:   brackets.MsgSlotBooked,
		RoomID: eventID,
		Payload: map[string]string{
			"slot_id":       slotID,
			"tournament_id": input.TournamentID,
			"group_id":      input.GroupID,
			"match_id":      input.MatchID,
		},
	})
	return booked, nil
}

func (s *slotService) ReleaseSlot(ctx context.Context, slotID string, tournamentID string, groupID string) error {
	return runInTx(ctx, s.db, func(tx *sql.Tx) error {
		slot, err := s.lockSlot(ctx, tx, slotID)
		if err != nil {
			return err
		}
		if !slot.IsBooked() {
			return fmt.Errorf("%w: slot %s is not booked", ErrValidationFailed, slotID)
		}

		tournament, err := lockTournamentTx(ctx, s.tournamentRepo, tx, tournamentID)
		if err != nil {
			return err
		}
		group := tournament.Group(groupID)
		if group == nil {
			return ErrGroupNotFound
		}
		match := group.Match(*slot.MatchID)
		if match != nil {
			match.SlotID = nil
			match.ScheduledAt = nil
			match.Location = nil
			if match.Status == models.MatchStatusScheduled {
				match.Status = models.MatchStatusPending
			}
			if err := s.tournamentRepo.UpdateGroups(ctx, tx, tournamentID, tournament.Groups); err != nil {
				return err
			}
		}
		return s.slotRepo.Release(ctx, tx, slotID)
	})
}

func (s *slotService) DeleteSlot(ctx context.Context, slotID string) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("failed to get slot %s: %w", slotID, err)
	}
	if slot.IsBooked() {
		return ErrSlotAlreadyBooked
	}
	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slotID, err)
	}
	return nil
}

func (s *slotService) lockSlot(ctx context.Context, tx *sql.Tx, id string) (*models.TimeSlot, error) {
	slot, err := s.slotRepo.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to lock slot %s: %w", id, err)
	}
	return slot, nil
}
