package catalog

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
	// nil cache disables caching, so tests hit the database directly.
	return NewService(repository.NewRoomTypeRepository(db), repository.NewRoomRepository(db), nil)
}

func TestCatalog_DeleteRoomTypeBlockedWhileRoomsExist(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	rt, err := s.CreateRoomType(ctx, CreateRoomTypeRequest{Name: "Standard", Capacity: 2, NightlyRate: 90})
	require.NoError(t, err)
	_, err = s.CreateRoom(ctx, CreateRoomRequest{Number: "101", RoomTypeID: rt.ID, Floor: 1})
	require.NoError(t, err)

	err = s.DeleteRoomType(ctx, rt.ID)
	assert.ErrorIs(t, err, ErrTypeInUse)

	empty, err := s.CreateRoomType(ctx, CreateRoomTypeRequest{Name: "Suite", Capacity: 4, NightlyRate: 240})
	require.NoError(t, err)
	assert.NoError(t, s.DeleteRoomType(ctx, empty.ID))
}

func TestCatalog_CreateRoomRequiresExistingType(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateRoom(context.Background(), CreateRoomRequest{Number: "101", RoomTypeID: 42})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_DuplicateRoomNumberRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	rt, err := s.CreateRoomType(ctx, CreateRoomTypeRequest{Name: "Standard", Capacity: 2, NightlyRate: 90})
	require.NoError(t, err)

	_, err = s.CreateRoom(ctx, CreateRoomRequest{Number: "101", RoomTypeID: rt.ID})
	require.NoError(t, err)
	_, err = s.CreateRoom(ctx, CreateRoomRequest{Number: "101", RoomTypeID: rt.ID})
	assert.ErrorIs(t, err, ErrDuplicateNumber)
}

func TestCatalog_DuplicateTypeNameRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateRoomType(ctx, CreateRoomTypeRequest{Name: "Standard", Capacity: 2, NightlyRate: 90})
	require.NoError(t, err)
	_, err = s.CreateRoomType(ctx, CreateRoomTypeRequest{Name: "Standard", Capacity: 3, NightlyRate: 120})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCatalog_DeactivateRoomKeepsRow(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	rt, err := s.CreateRoomType(ctx, CreateRoomTypeRequest{Name: "Standard", Capacity: 2, NightlyRate: 90})
	require.NoError(t, err)
	room, err := s.CreateRoom(ctx, CreateRoomRequest{Number: "101", RoomTypeID: rt.ID, Floor: 1})
	require.NoError(t, err)
	require.True(t, room.Active)

	off := false
	updated, err := s.UpdateRoom(ctx, room.ID, UpdateRoomRequest{
		Number:     "101",
		RoomTypeID: rt.ID,
		Floor:      1,
		Active:     &off,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	// The row survives; past reservations keep their room reference.
	rooms, err := s.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestCatalog_AmenitiesRoundTrip(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	rt, err := s.CreateRoomType(ctx, CreateRoomTypeRequest{
		Name: "Deluxe", Capacity: 3, NightlyRate: 150,
		Amenities: []string{"wifi", "minibar", "balcony"},
	})
	require.NoError(t, err)

	got, err := s.GetRoomType(ctx, rt.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "minibar", "balcony"}, got.Amenities)
}
