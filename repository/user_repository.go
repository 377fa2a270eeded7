package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/restaurant-site/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find user %s: %v", ErrPersistence, email, err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	email = normalizeEmail(email)

	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: check user %s: %v", ErrPersistence, email, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: user %s", ErrDuplicate, email)
	}

	user := models.User{Email: email, PasswordHash: passwordHash}
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %s", ErrDuplicate, email)
		}
		return nil, fmt.Errorf("%w: create user %s: %v", ErrPersistence, email, err)
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
