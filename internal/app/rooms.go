package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type CreateRoomInput struct {
	PropertyID   int64    `json:"property_id" validate:"required,gt=0"`
	Number       string   `json:"number" validate:"required,max=20"`
	Floor        *string  `json:"floor"`
	Kind         string   `json:"kind" validate:"required,oneof=single double twin suite"`
	Status       string   `json:"status" validate:"omitempty,oneof=available occupied cleaning maintenance"`
	Rate         float64  `json:"rate" validate:"gte=0"`
	MaxOccupancy int      `json:"max_occupancy" validate:"required,gte=1,lte=20"`
	Amenities    []string `json:"amenities"`
	Notes        *string  `json:"notes"`
}

type UpdateRoomInput struct {
	Number       *string   `json:"number" validate:"omitempty,max=20"`
	Floor        *string   `json:"floor"`
	Kind         *string   `json:"kind" validate:"omitempty,oneof=single double twin suite"`
	Status       *string   `json:"status" validate:"omitempty,oneof=available occupied cleaning maintenance"`
	Rate         *float64  `json:"rate" validate:"omitempty,gte=0"`
	MaxOccupancy *int      `json:"max_occupancy" validate:"omitempty,gte=1,lte=20"`
	Amenities    *[]string `json:"amenities"`
	Notes        *string   `json:"notes"`
}

type RoomService struct {
	repo  domain.RoomRepository
	cache domain.Cache
	ttl   time.Duration
}

func NewRoomService(r domain.RoomRepository, c domain.Cache, ttl time.Duration) *RoomService {
	return &RoomService{repo: r, cache: c, ttl: ttl}
}

func roomKey(id int64) string { return fmt.Sprintf("room:%d", id) }

func (s *RoomService) Create(ctx context.Context, in CreateRoomInput) (domain.Room, error) {
	if err := checkInput(in); err != nil {
		return domain.Room{}, err
	}
	rm := domain.Room{
		PropertyID:   in.PropertyID,
		Number:       in.Number,
		Floor:        in.Floor,
		Kind:         in.Kind,
		Status:       in.Status,
		Rate:         in.Rate,
		MaxOccupancy: in.MaxOccupancy,
		Amenities:    in.Amenities,
		Notes:        in.Notes,
	}
	if rm.Status == "" {
		rm.Status = domain.RoomAvailable
	}
	id, err := s.repo.Create(ctx, rm)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Del(ctx, dashboardKey(in.PropertyID))
	return s.repo.Get(ctx, id)
}

func (s *RoomService) Get(ctx context.Context, id int64) (domain.Room, error) {
	key := roomKey(id)
	var rm domain.Room
	if ok, _ := s.cache.Get(ctx, key, &rm); ok {
		return rm, nil
	}
	rm, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Set(ctx, key, rm, int(s.ttl.Seconds()))
	return rm, nil
}

func (s *RoomService) Update(ctx context.Context, id int64, in UpdateRoomInput) (domain.Room, error) {
	if err := checkInput(in); err != nil {
		return domain.Room{}, err
	}
	rm, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	if in.Number != nil {
		rm.Number = *in.Number
	}
	if in.Floor != nil {
		rm.Floor = in.Floor
	}
	if in.Kind != nil {
		rm.Kind = *in.Kind
	}
	if in.Status != nil {
		rm.Status = *in.Status
	}
	if in.Rate != nil {
		rm.Rate = *in.Rate
	}
	if in.MaxOccupancy != nil {
		rm.MaxOccupancy = *in.MaxOccupancy
	}
	if in.Amenities != nil {
		rm.Amenities = *in.Amenities
	}
	if in.Notes != nil {
		rm.Notes = in.Notes
	}
	if err := s.repo.Update(ctx, rm); err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Del(ctx, roomKey(id))
	_ = s.cache.Del(ctx, dashboardKey(rm.PropertyID))
	return s.repo.Get(ctx, id)
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	rm, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, roomKey(id))
	_ = s.cache.Del(ctx, dashboardKey(rm.PropertyID))
	return nil
}

func (s *RoomService) List(ctx context.Context, f domain.RoomFilter, pg domain.PageQuery) ([]domain.Room, domain.PageMeta, error) {
	pg = clampPage(pg)
	items, total, err := s.repo.List(ctx, f, PageToRange(pg.Page, pg.Limit))
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return items, PageMeta(pg.Page, pg.Limit, total), nil
}
