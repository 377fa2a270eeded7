package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Settable reports whether staff may move a reservation into s.
// Nothing ever goes back to pending.
func (s ReservationStatus) Settable() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

type Reservation struct {
	ID              string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string            `gorm:"type:varchar(255);not null" json:"name"`
	Email           string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string            `gorm:"type:varchar(50);not null" json:"phone"`
	Date            string            `gorm:"type:varchar(10);not null;index:idx_reservations_slot,priority:1" json:"date"`
	Time            string            `gorm:"type:varchar(5);not null;index:idx_reservations_slot,priority:2" json:"time"`
	Guests          int               `gorm:"not null;check:chk_reservations_guests,guests > 0" json:"guests"`
	SpecialRequests *string           `gorm:"type:text" json:"special_requests"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'pending';check:chk_reservations_status,status IN ('pending','confirmed','cancelled')" json:"status"`
	CreatedAt       time.Time         `gorm:"not null" json:"created_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if !r.Status.Valid() {
		return fmt.Errorf("reservation status %q", r.Status)
	}
	return nil
}

// ReservationFields carries what a visitor may submit. There is no status:
// new reservations are always pending.
type ReservationFields struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests *string
}
