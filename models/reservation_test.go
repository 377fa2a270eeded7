package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationBeforeCreate(t *testing.T) {
	r := &Reservation{Name: "Amina"}
	require.NoError(t, r.BeforeCreate(nil))
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, StatusPending, r.Status)

	confirmed := &Reservation{ID: "fixed", Status: StatusConfirmed}
	require.NoError(t, confirmed.BeforeCreate(nil))
	assert.Equal(t, "fixed", confirmed.ID)
	assert.Equal(t, StatusConfirmed, confirmed.Status)

	assert.Error(t, (&Reservation{Status: "seated"}).BeforeCreate(nil))
}

func TestReservationStatus(t *testing.T) {
	for _, s := range []ReservationStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ReservationStatus("seated").Valid())
	assert.False(t, ReservationStatus("").Valid())

	assert.False(t, StatusPending.Settable())
	assert.True(t, StatusConfirmed.Settable())
	assert.True(t, StatusCancelled.Settable())
}
