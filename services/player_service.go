package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/storage"
)

type CreatePlayerInput struct {
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
}

type PlayerService interface {
	AddPlayer(ctx context.Context, eventID string, input CreatePlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*models.Player, error)
	ListPlayersByEvent(ctx context.Context, eventID string, status *models.PlayerStatus) ([]*models.Player, error)
	UpdatePlayer(ctx context.Context, id string, input CreatePlayerInput) (*models.Player, error)
	ConfirmPlayer(ctx context.Context, id string) (*models.Player, error)
	UploadAvatar(ctx context.Context, id string, contentType string, data io.Reader) (*models.Player, error)
	RemovePlayer(ctx context.Context, id string) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	eventRepo  repositories.EventRepository
	uploader   storage.FileUploader
	ids        models.IDGenerator
}

func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	eventRepo repositories.EventRepository,
	uploader storage.FileUploader,
	ids models.IDGenerator,
) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		eventRepo:  eventRepo,
		uploader:   uploader,
		ids:        ids,
	}
}

func (s *playerService) AddPlayer(ctx context.Context, eventID string, input CreatePlayerInput) (*models.Player, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrPlayerNameRequired
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to check event %s: %w", eventID, err)
	}

	player := &models.Player{
		ID:      s.ids.NewID(),
		EventID: eventID,
		Name:    strings.TrimSpace(input.Name),
		Contact: input.Contact,
		Status:  models.PlayerStatusPending,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return s.withAvatarURL(player), nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", id, err)
	}
	return s.withAvatarURL(player), nil
}

func (s *playerService) ListPlayersByEvent(ctx context.Context, eventID string, status *models.PlayerStatus) ([]*models.Player, error) {
	players, err := s.playerRepo.ListByEvent(ctx, eventID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for event %s: %w", eventID, err)
	}
	for _, p := range players {
		s.withAvatarURL(p)
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id string, input CreatePlayerInput) (*models.Player, error) {
	player, err := s.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrPlayerNameRequired
	}

	player.Name = strings.TrimSpace(input.Name)
	player.Contact = input.Contact
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player %s: %w", id, err)
	}
	return s.withAvatarURL(player), nil
}

func (s *playerService) ConfirmPlayer(ctx context.Context, id string) (*models.Player, error) {
	if err := s.playerRepo.UpdateStatus(ctx, id, models.PlayerStatusConfirmed); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to confirm player %s: %w", id, err)
	}
	return s.GetPlayerByID(ctx, id)
}

func (s *playerService) UploadAvatar(ctx context.Context, id string, contentType string, data io.Reader) (*models.Player, error) {
	player, err := s.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s/%s", player.EventID, player.ID)
	result, err := s.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar for player %s: %w", id, err)
	}

	if err := s.playerRepo.UpdateAvatarKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store avatar key for player %s: %w", id, err)
	}
	player.AvatarKey = &result.Key
	return s.withAvatarURL(player), nil
}

func (s *playerService) RemovePlayer(ctx context.Context, id string) error {
	player, err := s.GetPlayerByID(ctx, id)
	if err != nil {
		return err
	}

	// Historical match data keeps referencing the removed id; the
	// standings calculator tolerates the dangling reference.
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player %s: %w", id, err)
	}

	if player.AvatarKey != nil {
		if err := s.uploader.Delete(ctx, *player.AvatarKey); err != nil {
			// The avatar object is orphaned, the player is gone. Not fatal.
			return nil
		}
	}
	return nil
}

func (s *playerService) withAvatarURL(player *models.Player) *models.Player {
	if player.AvatarKey != nil {
		url := s.uploader.GetPublicURL(*player.AvatarKey)
		player.AvatarURL = &url
	}
	return player
}
