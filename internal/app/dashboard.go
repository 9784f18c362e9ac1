package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

func dashboardKey(propertyID int64) string { return fmt.Sprintf("dashboard:%d", propertyID) }

type DashboardService struct {
	stats domain.StatsRepository
	cache domain.Cache
	ttl   time.Duration
}

func NewDashboardService(st domain.StatsRepository, c domain.Cache, ttl time.Duration) *DashboardService {
	return &DashboardService{stats: st, cache: c, ttl: ttl}
}

// Summary is read-through cached; writers that affect the aggregates
// (rooms, reservations, transactions) delete the key.
func (s *DashboardService) Summary(ctx context.Context, propertyID int64) (domain.DashboardSummary, error) {
	key := dashboardKey(propertyID)
	var out domain.DashboardSummary
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.stats.DashboardSummary(ctx, propertyID, time.Now().UTC())
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.ttl.Seconds()))
	return out, nil
}
