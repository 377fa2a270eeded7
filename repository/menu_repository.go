package repository

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-site/models"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ordered(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Order("category ASC").Order("name ASC")
}

// List returns every menu item, available or not. Used by the admin panel.
func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.ordered(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: list menu items: %v", ErrPersistence, err)
	}
	return items, nil
}

// ListAvailable returns the publicly visible items. A limit of zero or less
// means no cap.
func (r *MenuRepository) ListAvailable(ctx context.Context, limit int) ([]models.MenuItem, error) {
	q := r.ordered(ctx).Where("is_available = ?", true)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: list available menu items: %v", ErrPersistence, err)
	}
	return items, nil
}

func (r *MenuRepository) Create(ctx context.Context, f models.MenuFields) (*models.MenuItem, error) {
	item := models.MenuItem{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		ImageURL:    f.ImageURL,
		IsAvailable: f.IsAvailable,
	}
	if err := r.DB.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("%w: create menu item: %v", ErrPersistence, err)
	}
	return &item, nil
}

// Update overwrites every writable column of the item. Last write wins.
func (r *MenuRepository) Update(ctx context.Context, id string, f models.MenuFields) error {
	res := r.DB.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Select("name", "description", "price", "category", "image_url", "is_available").
		Updates(models.MenuItem{
			Name:        f.Name,
			Description: f.Description,
			Price:       f.Price,
			Category:    f.Category,
			ImageURL:    f.ImageURL,
			IsAvailable: f.IsAvailable,
		})
	if res.Error != nil {
		return fmt.Errorf("%w: update menu item %s: %v", ErrPersistence, id, res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL counts a save of identical values as zero affected rows.
		var count int64
		if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: find menu item %s: %v", ErrPersistence, id, err)
		}
		if count == 0 {
			return fmt.Errorf("%w: menu item %s", ErrNotFound, id)
		}
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuItem{})
	if res.Error != nil {
		return fmt.Errorf("%w: delete menu item %s: %v", ErrPersistence, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: menu item %s", ErrNotFound, id)
	}
	return nil
}
