package app

import (
	"context"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type CreateTransactionInput struct {
	PropertyID    int64   `json:"property_id" validate:"required,gt=0"`
	ReservationID *int64  `json:"reservation_id" validate:"omitempty,gt=0"`
	Kind          string  `json:"kind" validate:"required,oneof=payment refund expense"`
	Category      *string `json:"category" validate:"omitempty,oneof=room food laundry misc"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"omitempty,iso4217"`
	Method        *string `json:"method" validate:"omitempty,oneof=cash card transfer"`
	Note          *string `json:"note"`
	OccurredAt    *string `json:"occurred_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Transactions are append-only: no update input, only create and delete.
type TransactionService struct {
	repo  domain.TransactionRepository
	cache domain.Cache
}

func NewTransactionService(r domain.TransactionRepository, c domain.Cache) *TransactionService {
	return &TransactionService{repo: r, cache: c}
}

func (s *TransactionService) Create(ctx context.Context, in CreateTransactionInput) (domain.Transaction, error) {
	if err := checkInput(in); err != nil {
		return domain.Transaction{}, err
	}
	t := domain.Transaction{
		PropertyID:    in.PropertyID,
		ReservationID: in.ReservationID,
		Kind:          in.Kind,
		Category:      in.Category,
		Amount:        in.Amount,
		Currency:      in.Currency,
		Method:        in.Method,
		Note:          in.Note,
		OccurredAt:    time.Now().UTC(),
	}
	if t.Currency == "" {
		t.Currency = "USD"
	}
	if in.OccurredAt != nil {
		t.OccurredAt, _ = time.Parse(time.RFC3339, *in.OccurredAt)
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return domain.Transaction{}, err
	}
	_ = s.cache.Del(ctx, dashboardKey(in.PropertyID))
	return s.repo.Get(ctx, id)
}

func (s *TransactionService) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, dashboardKey(t.PropertyID))
	return nil
}

func (s *TransactionService) List(ctx context.Context, f domain.TransactionFilter, pg domain.PageQuery) ([]domain.Transaction, domain.PageMeta, error) {
	pg = clampPage(pg)
	items, total, err := s.repo.List(ctx, f, PageToRange(pg.Page, pg.Limit))
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return items, PageMeta(pg.Page, pg.Limit, total), nil
}
