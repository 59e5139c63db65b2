package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
)

type CreateEventInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, input CreateEventInput) (*models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	// GetEventOverview returns the event with players, tournaments and
	// slots attached, fetched in parallel.
	GetEventOverview(ctx context.Context, id string) (*models.Event, error)
	ListEventsByOrganizer(ctx context.Context, organizerID string) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, id string, input CreateEventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type eventService struct {
	eventRepo      repositories.EventRepository
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	slotRepo       repositories.TimeSlotRepository
	ids            models.IDGenerator
}

func NewEventService(
	eventRepo repositories.EventRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	slotRepo repositories.TimeSlotRepository,
	ids models.IDGenerator,
) EventService {
	return &eventService{
		eventRepo:      eventRepo,
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		slotRepo:       slotRepo,
		ids:            ids,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID string, input CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrEventNameRequired
	}

	event := &models.Event{
		ID:          s.ids.NewID(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		OrganizerID: organizerID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %s: %w", id, err)
	}
	return event, nil
}

func (s *eventService) GetEventOverview(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		players, err := s.playerRepo.ListByEvent(gCtx, id, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch players for event %s: %w", id, err)
		}
		event.Players = make([]models.Player, len(players))
		for i, p := range players {
			event.Players[i] = *p
		}
		return nil
	})

	g.Go(func() error {
		tournaments, err := s.tournamentRepo.ListByEvent(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch tournaments for event %s: %w", id, err)
		}
		event.Tournaments = make([]models.Tournament, len(tournaments))
		for i, t := range tournaments {
			event.Tournaments[i] = *t
		}
		return nil
	})

	g.Go(func() error {
		slots, err := s.slotRepo.ListByEvent(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch slots for event %s: %w", id, err)
		}
		event.Slots = make([]models.TimeSlot, len(slots))
		for i, sl := range slots {
			event.Slots[i] = *sl
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEventsByOrganizer(ctx context.Context, organizerID string) ([]*models.Event, error) {
	events, err := s.eventRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for organizer %s: %w", organizerID, err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, input CreateEventInput) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrEventNameRequired
	}

	event.Name = strings.TrimSpace(input.Name)
	event.Description = input.Description
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event %s: %w", id, err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}
