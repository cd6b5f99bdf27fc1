package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/cdn"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
)

// ContentService serves the admin-fed page decoration: top bars from
// the database and banner images from the external media CDN.
type ContentService struct {
	Repo *repo.GormRepo
	CDN  *cdn.Client
}

func (s *ContentService) ListTopBars(ctx context.Context) ([]models.TopBar, error) {
	return s.Repo.ListTopBars(ctx)
}

func (s *ContentService) CreateTopBar(ctx context.Context, topbar *models.TopBar) error {
	if topbar.Title == "" {
		return fmt.Errorf("title required: %w", ErrValidation)
	}
	return s.Repo.CreateTopBar(ctx, topbar)
}

func (s *ContentService) PatchTopBar(ctx context.Context, req transport.PatchTopBarRequest, id uuid.UUID) (*models.TopBar, error) {
	topbar, err := s.Repo.PatchTopBar(ctx, req, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("topbar %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return topbar, nil
}

func (s *ContentService) DeleteTopBar(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteTopBar(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("topbar %s: %w", id, ErrNotFound)
	}
	return err
}

func (s *ContentService) WebsiteBanners(ctx context.Context) ([]cdn.Resource, error) {
	return s.banners(ctx, cdn.TagWebsiteBanners)
}

func (s *ContentService) AppBanners(ctx context.Context) ([]cdn.Resource, error) {
	return s.banners(ctx, cdn.TagAppBanners)
}

func (s *ContentService) banners(ctx context.Context, tag string) ([]cdn.Resource, error) {
	if s.CDN == nil {
		return nil, fmt.Errorf("media cdn is not configured: %w", ErrConflict)
	}
	return s.CDN.ResourcesByTag(ctx, tag)
}
