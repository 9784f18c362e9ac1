package app

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type CreateUserInput struct {
	Username   string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	Role       string `json:"role" validate:"required,oneof=admin manager staff"`
	PropertyID *int64 `json:"property_id" validate:"omitempty,gt=0"`
}

type UpdateUserInput struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin manager staff"`
	PropertyID *int64  `json:"property_id" validate:"omitempty,gt=0"`
	Active     *bool   `json:"active"`
}

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(r domain.UserRepository) *UserService {
	return &UserService{repo: r}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (domain.User, error) {
	if err := checkInput(in); err != nil {
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		PropertyID:   in.PropertyID,
		Active:       true,
	}
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (domain.User, error) {
	if err := checkInput(in); err != nil {
		return domain.User{}, err
	}
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = string(hash)
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.PropertyID != nil {
		u.PropertyID = in.PropertyID
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return domain.User{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *UserService) List(ctx context.Context, f domain.UserFilter, pg domain.PageQuery) ([]domain.User, domain.PageMeta, error) {
	pg = clampPage(pg)
	items, total, err := s.repo.List(ctx, f, PageToRange(pg.Page, pg.Limit))
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return items, PageMeta(pg.Page, pg.Limit, total), nil
}
