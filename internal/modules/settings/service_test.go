package settings

import (
	"context"
	"testing"

	"frontdesk/internal/database"
	"frontdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(repository.NewSettingsRepository(db))
}

func TestSettings_DefaultsOnFirstGet(t *testing.T) {
	s := newTestService(t)

	st, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "15:00", st.CheckInTime)
	assert.Equal(t, "11:00", st.CheckOutTime)
	assert.Equal(t, "UTC", st.Timezone)
}

func TestSettings_UpdateRoundTrip(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	st, err := s.Update(ctx, UpdateSettingsRequest{
		HotelName:    "Pousada Mar Azul",
		Address:      "Av. Beira Mar 100",
		CheckInTime:  "14:00",
		CheckOutTime: "12:00",
		Timezone:     "America/Sao_Paulo",
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00", st.CheckInTime)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pousada Mar Azul", got.HotelName)
	assert.Equal(t, "America/Sao_Paulo", got.Timezone)
}

func TestSettings_RejectsBadPolicyValues(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	base := UpdateSettingsRequest{
		HotelName:    "Front Desk Hotel",
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
		Timezone:     "UTC",
	}

	bad := base
	bad.CheckInTime = "25:00"
	_, err := s.Update(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.CheckOutTime = "noonish"
	_, err = s.Update(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.Timezone = "Mars/Olympus"
	_, err = s.Update(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	// Nothing was persisted along the way.
	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "15:00", got.CheckInTime)
	assert.Equal(t, "UTC", got.Timezone)
}
