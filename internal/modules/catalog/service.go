package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"frontdesk/internal/cache"
	"frontdesk/internal/domain"
	"frontdesk/internal/repository"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("catalog record not found")
	ErrTypeInUse       = errors.New("room type still has rooms")
	ErrDuplicateName   = errors.New("room type name already exists")
	ErrDuplicateNumber = errors.New("room number already exists")
)

const (
	cacheKeyRoomTypes = "catalog:room_types"
	cacheKeyRooms     = "catalog:rooms"
	cacheTTL          = 5 * time.Minute
)

type Service struct {
	roomTypes *repository.RoomTypeRepository
	rooms     *repository.RoomRepository
	cache     *cache.Cache
}

func NewService(
	roomTypes *repository.RoomTypeRepository,
	rooms *repository.RoomRepository,
	c *cache.Cache,
) *Service {
	return &Service{roomTypes: roomTypes, rooms: rooms, cache: c}
}

/* ---------- ROOM TYPES ---------- */

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	var cached []domain.RoomType
	if s.cache.Get(ctx, cacheKeyRoomTypes, &cached) {
		return cached, nil
	}

	types, err := s.roomTypes.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyRoomTypes, types, cacheTTL)
	return types, nil
}

func (s *Service) GetRoomType(ctx context.Context, id int64) (*domain.RoomType, error) {
	t, err := s.roomTypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	t := &domain.RoomType{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Capacity:    req.Capacity,
		NightlyRate: req.NightlyRate,
		Amenities:   req.Amenities,
	}
	if t.Name == "" {
		return nil, ErrValidation
	}

	if err := s.roomTypes.Create(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.cache.Delete(ctx, cacheKeyRoomTypes)
	return t, nil
}

func (s *Service) UpdateRoomType(ctx context.Context, id int64, req UpdateRoomTypeRequest) (*domain.RoomType, error) {
	t, err := s.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Name = strings.TrimSpace(req.Name)
	t.Description = req.Description
	t.Capacity = req.Capacity
	t.NightlyRate = req.NightlyRate
	t.Amenities = req.Amenities
	if t.Name == "" {
		return nil, ErrValidation
	}

	if err := s.roomTypes.Update(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.cache.Delete(ctx, cacheKeyRoomTypes)
	return t, nil
}

// DeleteRoomType refuses while rooms of the type exist, so reservations
// never lose their pricing reference.
func (s *Service) DeleteRoomType(ctx context.Context, id int64) error {
	if _, err := s.GetRoomType(ctx, id); err != nil {
		return err
	}

	n, err := s.rooms.CountByType(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTypeInUse
	}

	if err := s.roomTypes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.cache.Delete(ctx, cacheKeyRoomTypes)
	return nil
}

/* ---------- ROOMS ---------- */

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var cached []domain.Room
	if s.cache.Get(ctx, cacheKeyRooms, &cached) {
		return cached, nil
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyRooms, rooms, cacheTTL)
	return rooms, nil
}

func (s *Service) ListRoomsByType(ctx context.Context, roomTypeID int64) ([]domain.Room, error) {
	return s.rooms.ListByType(ctx, roomTypeID)
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.GetRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	room := &domain.Room{
		Number:     strings.TrimSpace(req.Number),
		RoomTypeID: req.RoomTypeID,
		Floor:      req.Floor,
		Active:     true,
		Notes:      req.Notes,
	}
	if room.Number == "" {
		return nil, ErrValidation
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}
	s.cache.Delete(ctx, cacheKeyRooms)
	return room, nil
}

// UpdateRoom also carries deactivation; rooms are never deleted because
// past reservations pin them by id.
func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.GetRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	room.Number = strings.TrimSpace(req.Number)
	room.RoomTypeID = req.RoomTypeID
	room.Floor = req.Floor
	room.Notes = req.Notes
	if req.Active != nil {
		room.Active = *req.Active
	}
	if room.Number == "" {
		return nil, ErrValidation
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}
	s.cache.Delete(ctx, cacheKeyRooms)
	return room, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
