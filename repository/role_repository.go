package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-site/models"
	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{DB: db}
}

// HasRole reports whether a user_roles row exists for the pair.
func (r *RoleRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var grant models.UserRole
	err := r.DB.WithContext(ctx).
		Select("id").
		Where("user_id = ? AND role = ?", userID, role).
		Take(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: lookup role %s for %s: %v", ErrPersistence, role, userID, err)
	}
	return true, nil
}

// Grant inserts the role row if it is missing. Only the grant-admin command
// calls this; the web surface never writes roles.
func (r *RoleRepository) Grant(ctx context.Context, userID, role string) error {
	grant := models.UserRole{UserID: userID, Role: role}
	err := r.DB.WithContext(ctx).
		Where(models.UserRole{UserID: userID, Role: role}).
		FirstOrCreate(&grant).Error
	if err != nil {
		return fmt.Errorf("%w: grant role %s to %s: %v", ErrPersistence, role, userID, err)
	}
	return nil
}
