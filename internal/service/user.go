package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/events"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

type UserService struct {
	Repo     *repo.GormRepo
	Producer events.Publisher
}

// HandleIdentityEvent keeps the local user mirror in sync with the
// identity provider's webhook stream.
func (s *UserService) HandleIdentityEvent(ctx context.Context, ev transport.IdentityEvent) error {
	if ev.Data.ID == "" {
		return fmt.Errorf("identity event without user id: %w", ErrValidation)
	}

	switch ev.Type {
	case "user.created", "user.updated":
		if err := s.Repo.UpsertUserByClerkID(ctx, &models.User{
			ClerkID:  ev.Data.ID,
			Email:    ev.Data.Email,
			Username: ev.Data.Username,
			Image:    ev.Data.Image,
		}); err != nil {
			return err
		}
	case "user.deleted":
		err := s.Repo.DeleteUserByClerkID(ctx, ev.Data.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	default:
		return fmt.Errorf("unknown identity event %q: %w", ev.Type, ErrValidation)
	}

	if s.Producer != nil {
		if err := s.Producer.PublishEvent(ctx, events.TopicUser, ev.Data.ID, map[string]any{
			"type":     ev.Type,
			"clerk_id": ev.Data.ID,
		}); err != nil {
			logging.FromContext(ctx).Error("event publish failed", "topic", events.TopicUser, "error", err)
		}
	}
	return nil
}

func (s *UserService) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	user, err := s.Repo.GetUserByClerkID(ctx, clerkID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("User not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeActiveAddress flips the active flag to the given address and
// clears it from every sibling in one transaction.
func (s *UserService) ChangeActiveAddress(ctx context.Context, clerkID string, addressID uuid.UUID) ([]models.Address, error) {
	user, err := s.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.Repo.SetActiveAddress(ctx, user.ID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("address %s: %w", addressID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *UserService) DeleteAddress(ctx context.Context, clerkID string, addressID uuid.UUID) ([]models.Address, error) {
	user, err := s.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	err = s.Repo.DeleteAddress(ctx, user.ID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("address %s: %w", addressID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.Repo.ListAddresses(ctx, user.ID)
}
