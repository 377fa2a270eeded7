package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newReservationService(t *testing.T) *ReservationService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Reservation{}))

	return NewReservationService(repository.NewReservationRepository(db))
}

func aminaForm() ReservationForm {
	return ReservationForm{
		Name:   "Amina",
		Email:  "amina@example.com",
		Phone:  "+212 6 12 34 56 78",
		Date:   "2026-11-02",
		Time:   "20:00",
		Guests: "4",
	}
}

func TestCreateReservationIsPending(t *testing.T) {
	svc := newReservationService(t)
	ctx := context.Background()

	form := aminaForm()
	form.Status = "confirmed"
	form.SpecialRequests = "Table près de la fenêtre"

	r, err := svc.Create(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, r.Status)
	assert.Equal(t, 4, r.Guests)
	require.NotNil(t, r.SpecialRequests)
	assert.Equal(t, "Table près de la fenêtre", *r.SpecialRequests)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Amina", list[0].Name)
	assert.Equal(t, models.StatusPending, list[0].Status)
}

func TestCreateReservationEmptyRequestsIsNull(t *testing.T) {
	svc := newReservationService(t)

	form := aminaForm()
	form.SpecialRequests = "   "
	r, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Nil(t, r.SpecialRequests)
}

func TestReservationFormRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ReservationForm)
		message string
	}{
		{"missing name", func(f *ReservationForm) { f.Name = "" }, MsgNameMissing},
		{"bad email", func(f *ReservationForm) { f.Email = "amina" }, MsgInvalidEmail},
		{"missing phone", func(f *ReservationForm) { f.Phone = " " }, MsgPhoneRequired},
		{"french date", func(f *ReservationForm) { f.Date = "02/11/2026" }, MsgInvalidDate},
		{"loose time", func(f *ReservationForm) { f.Time = "8pm" }, MsgInvalidTime},
		{"zero guests", func(f *ReservationForm) { f.Guests = "0" }, MsgInvalidGuests},
		{"text guests", func(f *ReservationForm) { f.Guests = "quatre" }, MsgInvalidGuests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := aminaForm()
			tt.mutate(&form)
			_, err := form.Fields()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestReservationStatusChanges(t *testing.T) {
	svc := newReservationService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, aminaForm())
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, r.ID, "confirmed"))
	require.NoError(t, svc.SetStatus(ctx, r.ID, "cancelled"))
	assert.ErrorIs(t, svc.SetStatus(ctx, r.ID, "pending"), repository.ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", "confirmed"), repository.ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, list[0].Status)
}

func TestDeleteReservationNeedsConfirmation(t *testing.T) {
	svc := newReservationService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, aminaForm())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, r.ID, false), ErrConfirmationRequired)
	require.NoError(t, svc.Delete(ctx, r.ID, true))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
