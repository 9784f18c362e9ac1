package app

import (
	"context"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type ShiftSlotInput struct {
	Day   string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

type CreateStaffInput struct {
	PropertyID int64            `json:"property_id" validate:"required,gt=0"`
	FirstName  string           `json:"first_name" validate:"required,max=100"`
	LastName   string           `json:"last_name" validate:"max=100"`
	Role       string           `json:"role" validate:"required,oneof=manager reception housekeeping maintenance"`
	Email      *string          `json:"email" validate:"omitempty,email"`
	Phone      *string          `json:"phone" validate:"omitempty,e164"`
	Schedule   []ShiftSlotInput `json:"schedule" validate:"dive"`
}

type UpdateStaffInput struct {
	FirstName *string           `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string           `json:"last_name" validate:"omitempty,max=100"`
	Role      *string           `json:"role" validate:"omitempty,oneof=manager reception housekeeping maintenance"`
	Email     *string           `json:"email" validate:"omitempty,email"`
	Phone     *string           `json:"phone" validate:"omitempty,e164"`
	Active    *bool             `json:"active"`
	Schedule  *[]ShiftSlotInput `json:"schedule" validate:"omitempty,dive"`
}

type StaffService struct {
	repo domain.StaffRepository
}

func NewStaffService(r domain.StaffRepository) *StaffService {
	return &StaffService{repo: r}
}

func slotsToDomain(in []ShiftSlotInput) []domain.ShiftSlot {
	out := make([]domain.ShiftSlot, 0, len(in))
	for _, s := range in {
		out = append(out, domain.ShiftSlot{Day: s.Day, Start: s.Start, End: s.End})
	}
	return out
}

func (s *StaffService) Create(ctx context.Context, in CreateStaffInput) (domain.StaffMember, error) {
	if err := checkInput(in); err != nil {
		return domain.StaffMember{}, err
	}
	m := domain.StaffMember{
		PropertyID: in.PropertyID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Role:       in.Role,
		Email:      in.Email,
		Phone:      in.Phone,
		Active:     true,
		Schedule:   slotsToDomain(in.Schedule),
	}
	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return domain.StaffMember{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *StaffService) Get(ctx context.Context, id int64) (domain.StaffMember, error) {
	return s.repo.Get(ctx, id)
}

func (s *StaffService) Update(ctx context.Context, id int64, in UpdateStaffInput) (domain.StaffMember, error) {
	if err := checkInput(in); err != nil {
		return domain.StaffMember{}, err
	}
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.StaffMember{}, err
	}
	if in.FirstName != nil {
		m.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		m.LastName = *in.LastName
	}
	if in.Role != nil {
		m.Role = *in.Role
	}
	if in.Email != nil {
		m.Email = in.Email
	}
	if in.Phone != nil {
		m.Phone = in.Phone
	}
	if in.Active != nil {
		m.Active = *in.Active
	}
	if in.Schedule != nil {
		m.Schedule = slotsToDomain(*in.Schedule)
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return domain.StaffMember{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *StaffService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *StaffService) List(ctx context.Context, f domain.StaffFilter, pg domain.PageQuery) ([]domain.StaffMember, domain.PageMeta, error) {
	pg = clampPage(pg)
	items, total, err := s.repo.List(ctx, f, PageToRange(pg.Page, pg.Limit))
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return items, PageMeta(pg.Page, pg.Limit, total), nil
}
