package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type CreateReservationInput struct {
	PropertyID  int64   `json:"property_id" validate:"required,gt=0"`
	RoomID      int64   `json:"room_id" validate:"required,gt=0"`
	GuestID     int64   `json:"guest_id" validate:"required,gt=0"`
	CheckIn     string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut    string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	Adults      int     `json:"adults" validate:"required,gte=1,lte=10"`
	Children    int     `json:"children" validate:"gte=0,lte=10"`
	TotalAmount float64 `json:"total_amount" validate:"gte=0"`
	Source      *string `json:"source" validate:"omitempty,oneof=walk_in phone website ota"`
	Notes       *string `json:"notes"`
}

type UpdateReservationInput struct {
	RoomID      *int64   `json:"room_id" validate:"omitempty,gt=0"`
	CheckIn     *string  `json:"check_in" validate:"omitempty,datetime=2006-01-02"`
	CheckOut    *string  `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
	Adults      *int     `json:"adults" validate:"omitempty,gte=1,lte=10"`
	Children    *int     `json:"children" validate:"omitempty,gte=0,lte=10"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	Source      *string  `json:"source" validate:"omitempty,oneof=walk_in phone website ota"`
	Notes       *string  `json:"notes"`
}

// transitions holds the allowed status moves; everything else is ErrInvalid.
var transitions = map[string][]string{
	domain.ResPending:   {domain.ResConfirmed, domain.ResCancelled},
	domain.ResConfirmed: {domain.ResCheckedIn, domain.ResCancelled},
	domain.ResCheckedIn: {domain.ResCheckedOut},
}

func canTransition(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type ReservationService struct {
	repo  domain.ReservationRepository
	cache domain.Cache
}

func NewReservationService(r domain.ReservationRepository, c domain.Cache) *ReservationService {
	return &ReservationService{repo: r, cache: c}
}

// newConfirmation derives a short guest-facing code from a v4 UUID.
func newConfirmation() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (domain.Reservation, error) {
	if err := checkInput(in); err != nil {
		return domain.Reservation{}, err
	}
	checkIn, _ := time.Parse("2006-01-02", in.CheckIn)
	checkOut, _ := time.Parse("2006-01-02", in.CheckOut)
	if !checkOut.After(checkIn) {
		return domain.Reservation{}, fmt.Errorf("%w: check_out must be after check_in", domain.ErrInvalid)
	}
	rv := domain.Reservation{
		Confirmation: newConfirmation(),
		PropertyID:   in.PropertyID,
		RoomID:       in.RoomID,
		GuestID:      in.GuestID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       in.Adults,
		Children:     in.Children,
		Status:       domain.ResPending,
		TotalAmount:  in.TotalAmount,
		Source:       in.Source,
		Notes:        in.Notes,
	}
	id, err := s.repo.Create(ctx, rv)
	if err != nil {
		return domain.Reservation{}, err
	}
	_ = s.cache.Del(ctx, dashboardKey(in.PropertyID))
	return s.repo.Get(ctx, id)
}

func (s *ReservationService) Get(ctx context.Context, id int64) (domain.Reservation, error) {
	return s.repo.Get(ctx, id)
}

func (s *ReservationService) Update(ctx context.Context, id int64, in UpdateReservationInput) (domain.Reservation, error) {
	if err := checkInput(in); err != nil {
		return domain.Reservation{}, err
	}
	rv, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if rv.Status == domain.ResCheckedOut || rv.Status == domain.ResCancelled {
		return domain.Reservation{}, fmt.Errorf("%w: reservation is %s", domain.ErrInvalid, rv.Status)
	}
	if in.RoomID != nil {
		rv.RoomID = *in.RoomID
	}
	if in.CheckIn != nil {
		rv.CheckIn, _ = time.Parse("2006-01-02", *in.CheckIn)
	}
	if in.CheckOut != nil {
		rv.CheckOut, _ = time.Parse("2006-01-02", *in.CheckOut)
	}
	if !rv.CheckOut.After(rv.CheckIn) {
		return domain.Reservation{}, fmt.Errorf("%w: check_out must be after check_in", domain.ErrInvalid)
	}
	if in.Adults != nil {
		rv.Adults = *in.Adults
	}
	if in.Children != nil {
		rv.Children = *in.Children
	}
	if in.TotalAmount != nil {
		rv.TotalAmount = *in.TotalAmount
	}
	if in.Source != nil {
		rv.Source = in.Source
	}
	if in.Notes != nil {
		rv.Notes = in.Notes
	}
	if err := s.repo.Update(ctx, rv); err != nil {
		return domain.Reservation{}, err
	}
	_ = s.cache.Del(ctx, dashboardKey(rv.PropertyID))
	return s.repo.Get(ctx, id)
}

// SetStatus applies one lifecycle transition.
func (s *ReservationService) SetStatus(ctx context.Context, id int64, status string) (domain.Reservation, error) {
	rv, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !canTransition(rv.Status, status) {
		return domain.Reservation{}, fmt.Errorf("%w: cannot move %s to %s", domain.ErrInvalid, rv.Status, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return domain.Reservation{}, err
	}
	_ = s.cache.Del(ctx, dashboardKey(rv.PropertyID))
	return s.repo.Get(ctx, id)
}

func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	rv, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, dashboardKey(rv.PropertyID))
	return nil
}

func (s *ReservationService) List(ctx context.Context, f domain.ReservationFilter, pg domain.PageQuery) ([]domain.Reservation, domain.PageMeta, error) {
	pg = clampPage(pg)
	items, total, err := s.repo.List(ctx, f, PageToRange(pg.Page, pg.Limit))
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return items, PageMeta(pg.Page, pg.Limit, total), nil
}
