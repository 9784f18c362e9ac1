package app

import (
	"context"
	"encoding/json"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type CreateGuestInput struct {
	FirstName   string          `json:"first_name" validate:"required,max=100"`
	LastName    string          `json:"last_name" validate:"max=100"`
	Email       *string         `json:"email" validate:"omitempty,email"`
	Phone       *string         `json:"phone" validate:"omitempty,e164"`
	Country     *string         `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	IDNumber    *string         `json:"id_number" validate:"omitempty,max=50"`
	VIP         bool            `json:"vip"`
	Preferences json.RawMessage `json:"preferences"`
	Notes       *string         `json:"notes"`
}

type UpdateGuestInput struct {
	FirstName   *string         `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string         `json:"last_name" validate:"omitempty,max=100"`
	Email       *string         `json:"email" validate:"omitempty,email"`
	Phone       *string         `json:"phone" validate:"omitempty,e164"`
	Country     *string         `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	IDNumber    *string         `json:"id_number" validate:"omitempty,max=50"`
	VIP         *bool           `json:"vip"`
	Preferences json.RawMessage `json:"preferences"`
	Notes       *string         `json:"notes"`
}

// Guests are not cached: the profile screen reads them rarely and always
// wants the latest notes.
type GuestService struct {
	repo domain.GuestRepository
}

func NewGuestService(r domain.GuestRepository) *GuestService {
	return &GuestService{repo: r}
}

func (s *GuestService) Create(ctx context.Context, in CreateGuestInput) (domain.Guest, error) {
	if err := checkInput(in); err != nil {
		return domain.Guest{}, err
	}
	g := domain.Guest{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Country:     in.Country,
		IDNumber:    in.IDNumber,
		VIP:         in.VIP,
		Preferences: in.Preferences,
		Notes:       in.Notes,
	}
	id, err := s.repo.Create(ctx, g)
	if err != nil {
		return domain.Guest{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *GuestService) Get(ctx context.Context, id int64) (domain.Guest, error) {
	return s.repo.Get(ctx, id)
}

func (s *GuestService) Update(ctx context.Context, id int64, in UpdateGuestInput) (domain.Guest, error) {
	if err := checkInput(in); err != nil {
		return domain.Guest{}, err
	}
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Guest{}, err
	}
	if in.FirstName != nil {
		g.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		g.LastName = *in.LastName
	}
	if in.Email != nil {
		g.Email = in.Email
	}
	if in.Phone != nil {
		g.Phone = in.Phone
	}
	if in.Country != nil {
		g.Country = in.Country
	}
	if in.IDNumber != nil {
		g.IDNumber = in.IDNumber
	}
	if in.VIP != nil {
		g.VIP = *in.VIP
	}
	if len(in.Preferences) > 0 {
		g.Preferences = in.Preferences
	}
	if in.Notes != nil {
		g.Notes = in.Notes
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return domain.Guest{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *GuestService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *GuestService) List(ctx context.Context, f domain.GuestFilter, pg domain.PageQuery) ([]domain.Guest, domain.PageMeta, error) {
	pg = clampPage(pg)
	items, total, err := s.repo.List(ctx, f, PageToRange(pg.Page, pg.Limit))
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return items, PageMeta(pg.Page, pg.Limit, total), nil
}
