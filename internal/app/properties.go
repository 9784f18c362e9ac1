package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type CreatePropertyInput struct {
	Name      string   `json:"name" validate:"required,max=200"`
	Kind      *string  `json:"kind" validate:"omitempty,oneof=hotel hostel resort apartment"`
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	Country   *string  `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	Phone     *string  `json:"phone" validate:"omitempty,e164"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Timezone  string   `json:"timezone"`
	Currency  string   `json:"currency" validate:"omitempty,iso4217"`
	Amenities []string `json:"amenities"`
}

type UpdatePropertyInput struct {
	Name      *string   `json:"name" validate:"omitempty,max=200"`
	Kind      *string   `json:"kind" validate:"omitempty,oneof=hotel hostel resort apartment"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	Country   *string   `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	Phone     *string   `json:"phone" validate:"omitempty,e164"`
	Email     *string   `json:"email" validate:"omitempty,email"`
	Timezone  *string   `json:"timezone"`
	Currency  *string   `json:"currency" validate:"omitempty,iso4217"`
	Amenities *[]string `json:"amenities"`
}

type PropertyService struct {
	repo  domain.PropertyRepository
	cache domain.Cache
	ttl   time.Duration
}

func NewPropertyService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *PropertyService {
	return &PropertyService{repo: r, cache: c, ttl: ttl}
}

func propertyKey(id int64) string { return fmt.Sprintf("property:%d", id) }

func (s *PropertyService) Create(ctx context.Context, in CreatePropertyInput) (domain.Property, error) {
	if err := checkInput(in); err != nil {
		return domain.Property{}, err
	}
	p := domain.Property{
		Name:      in.Name,
		Kind:      in.Kind,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		Phone:     in.Phone,
		Email:     in.Email,
		Timezone:  in.Timezone,
		Currency:  in.Currency,
		Amenities: in.Amenities,
	}
	if p.Timezone == "" {
		p.Timezone = "UTC"
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Property{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *PropertyService) Get(ctx context.Context, id int64) (domain.Property, error) {
	key := propertyKey(id)
	var p domain.Property
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.ttl.Seconds()))
	return p, nil
}

func (s *PropertyService) Update(ctx context.Context, id int64, in UpdatePropertyInput) (domain.Property, error) {
	if err := checkInput(in); err != nil {
		return domain.Property{}, err
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Kind != nil {
		p.Kind = in.Kind
	}
	if in.Address != nil {
		p.Address = in.Address
	}
	if in.City != nil {
		p.City = in.City
	}
	if in.State != nil {
		p.State = in.State
	}
	if in.Country != nil {
		p.Country = in.Country
	}
	if in.Phone != nil {
		p.Phone = in.Phone
	}
	if in.Email != nil {
		p.Email = in.Email
	}
	if in.Timezone != nil {
		p.Timezone = *in.Timezone
	}
	if in.Currency != nil {
		p.Currency = *in.Currency
	}
	if in.Amenities != nil {
		p.Amenities = *in.Amenities
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return domain.Property{}, err
	}
	_ = s.cache.Del(ctx, propertyKey(id))
	return s.repo.Get(ctx, id)
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, propertyKey(id))
	_ = s.cache.Del(ctx, dashboardKey(id))
	return nil
}

func (s *PropertyService) List(ctx context.Context, f domain.PropertyFilter, pg domain.PageQuery) ([]domain.Property, domain.PageMeta, error) {
	pg = clampPage(pg)
	items, total, err := s.repo.List(ctx, f, PageToRange(pg.Page, pg.Limit))
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return items, PageMeta(pg.Page, pg.Limit, total), nil
}
