package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
)

func (r *GormRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Addresses").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Addresses").Where("clerk_id = ?", clerkID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUserByClerkID creates or refreshes the local mirror of an
// identity-provider account.
func (r *GormRepo) UpsertUserByClerkID(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("clerk_id = ?", user.ClerkID).First(&existing).Error
		if err == nil {
			return tx.Model(&existing).Updates(map[string]any{
				"email":    user.Email,
				"username": user.Username,
				"image":    user.Image,
			}).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Create(user).Error
	})
}

func (r *GormRepo) DeleteUserByClerkID(ctx context.Context, clerkID string) error {
	res := r.DB.WithContext(ctx).Where("clerk_id = ?", clerkID).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress appends an address and makes it the active one. The
// sibling active flags are cleared in the same transaction so at most
// one address per user is ever active.
func (r *GormRepo) AddAddress(ctx context.Context, address *models.Address) ([]models.Address, error) {
	var addresses []models.Address
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", address.UserID).Update("active", false).Error; err != nil {
			return err
		}
		address.Active = true
		if err := tx.Create(address).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", address.UserID).Order("id").Find(&addresses).Error
	})
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormRepo) SetActiveAddress(ctx context.Context, userID, addressID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.Address
		if err := forUpdate(tx).Where("id = ? AND user_id = ?", addressID, userID).First(&target).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&target).Update("active", true).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Order("id").Find(&addresses).Error
	})
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormRepo) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", addressID, userID).Delete(&models.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
