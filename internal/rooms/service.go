package rooms

import (
	"context"
	"fmt"
	"time"
)

// Service owns room inventory operations.
type Service struct {
	repo Repository
}

// NewService constructs the room service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	status := RoomStatus(req.Status)
	if status == "" {
		status = StatusAvailable
	}
	room := Room{
		RoomNumber:  req.RoomNumber,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Amenities:   req.Amenities,
		Status:      status,
		Description: req.Description,
	}
	id, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*Room, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListRoomsRequest) ([]Room, int, error) {
	return s.repo.List(ctx, req)
}

// Available resolves the rooms free for the requested range. When either date
// is missing it returns the full unfiltered inventory so the booking form can
// render before a range is chosen. That fallback is deliberately permissive
// and not safe to rely on outside the admin dashboard.
func (s *Service) Available(ctx context.Context, checkIn, checkOut *time.Time) ([]Room, error) {
	if checkIn == nil || checkOut == nil {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListAvailable(ctx, *checkIn, *checkOut)
}
