package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
)

func (r *GormRepo) ListTopBars(ctx context.Context) ([]models.TopBar, error) {
	var topbars []models.TopBar
	if err := r.DB.WithContext(ctx).Order("updated_at DESC").Find(&topbars).Error; err != nil {
		return nil, err
	}
	return topbars, nil
}

func (r *GormRepo) CreateTopBar(ctx context.Context, topbar *models.TopBar) error {
	return r.DB.WithContext(ctx).Create(topbar).Error
}

func (r *GormRepo) PatchTopBar(ctx context.Context, req transport.PatchTopBarRequest, id uuid.UUID) (*models.TopBar, error) {
	var topbar models.TopBar
	if err := r.DB.WithContext(ctx).First(&topbar, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if req.Title != nil {
		topbar.Title = *req.Title
	}
	if req.Link != nil {
		topbar.Link = *req.Link
	}
	if req.TextColor != nil {
		topbar.TextColor = *req.TextColor
	}
	if req.Background != nil {
		topbar.Background = *req.Background
	}

	if err := r.DB.WithContext(ctx).Save(&topbar).Error; err != nil {
		return nil, err
	}
	return &topbar, nil
}

func (r *GormRepo) DeleteTopBar(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.TopBar{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
