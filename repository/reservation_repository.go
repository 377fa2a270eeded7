package repository

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-site/models"
	"gorm.io/gorm"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// List returns reservations newest date first, ties broken by later time first.
func (r *ReservationRepository) List(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.DB.WithContext(ctx).
		Order("date DESC").
		Order("time DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list reservations: %v", ErrPersistence, err)
	}
	return reservations, nil
}

// Create stores a new reservation. The status is always pending.
func (r *ReservationRepository) Create(ctx context.Context, f models.ReservationFields) (*models.Reservation, error) {
	reservation := models.Reservation{
		Name:            f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		Date:            f.Date,
		Time:            f.Time,
		Guests:          f.Guests,
		SpecialRequests: f.SpecialRequests,
		Status:          models.StatusPending,
	}
	if err := r.DB.WithContext(ctx).Create(&reservation).Error; err != nil {
		return nil, fmt.Errorf("%w: create reservation: %v", ErrPersistence, err)
	}
	return &reservation, nil
}

// SetStatus moves a reservation to confirmed or cancelled. Switching between
// the two is allowed so staff can correct mistakes.
func (r *ReservationRepository) SetStatus(ctx context.Context, id string, status models.ReservationStatus) error {
	if !status.Settable() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	res := r.DB.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("%w: set reservation %s status: %v", ErrPersistence, id, res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows when the value is unchanged.
		var count int64
		if err := r.DB.WithContext(ctx).Model(&models.Reservation{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: find reservation %s: %v", ErrPersistence, id, err)
		}
		if count == 0 {
			return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
		}
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Reservation{})
	if res.Error != nil {
		return fmt.Errorf("%w: delete reservation %s: %v", ErrPersistence, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	return nil
}
