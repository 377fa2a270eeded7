package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
)

type ReservationStore interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Create(ctx context.Context, f models.ReservationFields) (*models.Reservation, error)
	SetStatus(ctx context.Context, id string, status models.ReservationStatus) error
	Delete(ctx context.Context, id string) error
}

// ReservationForm is the public booking form. Status may be present in what a
// client posts but it is never read.
type ReservationForm struct {
	Name            string    `form:"name" json:"name" validate:"required"`
	Email           string    `form:"email" json:"email" validate:"required,email"`
	Phone           string    `form:"phone" json:"phone" validate:"required"`
	Date            string    `form:"date" json:"date" validate:"required"`
	Time            string    `form:"time" json:"time" validate:"required"`
	Guests          FormValue `form:"guests" json:"guests" validate:"required"`
	SpecialRequests string    `form:"special_requests" json:"special_requests"`
	Status          string    `form:"status" json:"status"`
}

var reservationFormMessages = map[string]string{
	"Name":   MsgNameMissing,
	"Email":  MsgInvalidEmail,
	"Phone":  MsgPhoneRequired,
	"Date":   MsgInvalidDate,
	"Time":   MsgInvalidTime,
	"Guests": MsgInvalidGuests,
}

// Fields validates the form. Guests is parsed to an integer of at least one.
func (f ReservationForm) Fields() (models.ReservationFields, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Guests = FormValue(strings.TrimSpace(f.Guests.String()))

	if err := checkStruct(f, reservationFormMessages); err != nil {
		return models.ReservationFields{}, err
	}
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		return models.ReservationFields{}, invalid("Date", MsgInvalidDate)
	}
	if _, err := time.Parse("15:04", f.Time); err != nil {
		return models.ReservationFields{}, invalid("Time", MsgInvalidTime)
	}
	guests, err := strconv.Atoi(f.Guests.String())
	if err != nil || guests < 1 {
		return models.ReservationFields{}, invalid("Guests", MsgInvalidGuests)
	}

	fields := models.ReservationFields{
		Name:   f.Name,
		Email:  f.Email,
		Phone:  f.Phone,
		Date:   f.Date,
		Time:   f.Time,
		Guests: guests,
	}
	if req := strings.TrimSpace(f.SpecialRequests); req != "" {
		fields.SpecialRequests = &req
	}
	return fields, nil
}

type ReservationService struct {
	reservations ReservationStore
}

func NewReservationService(reservations ReservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

func (s *ReservationService) Create(ctx context.Context, form ReservationForm) (*models.Reservation, error) {
	fields, err := form.Fields()
	if err != nil {
		return nil, err
	}
	reservation, err := s.reservations.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.WithField("reservation_id", reservation.ID).Info("reservation created")
	return reservation, nil
}

func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *ReservationService) SetStatus(ctx context.Context, id, status string) error {
	if err := s.reservations.SetStatus(ctx, id, models.ReservationStatus(strings.TrimSpace(status))); err != nil {
		return err
	}
	utils.InfoLogger.WithFields(map[string]interface{}{
		"reservation_id": id,
		"status":         status,
	}).Info("reservation status changed")
	return nil
}

func (s *ReservationService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}
	utils.InfoLogger.WithField("reservation_id", id).Info("reservation deleted")
	return nil
}
