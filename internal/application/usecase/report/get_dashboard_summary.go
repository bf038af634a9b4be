// Package report contains the budget/spending aggregation engine and the
// reporting use cases built on top of it.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// summaryCacheTTL bounds how stale a cached dashboard summary can get.
const summaryCacheTTL = 60 * time.Second

// GetDashboardSummaryInput represents the input for the dashboard summary.
type GetDashboardSummaryInput struct {
	UserID uuid.UUID
}

// GetDashboardSummaryUseCase renders the "this month" view. The current month
// comes from the clock; the rendered payload may be cached briefly, and cache
// failures are treated as misses.
type GetDashboardSummaryUseCase struct {
	loader *SnapshotLoader
	clock  adapter.Clock
	cache  adapter.SummaryCache
}

// NewGetDashboardSummaryUseCase creates a new GetDashboardSummaryUseCase instance.
func NewGetDashboardSummaryUseCase(
	loader *SnapshotLoader,
	clock adapter.Clock,
	cache adapter.SummaryCache,
) *GetDashboardSummaryUseCase {
	return &GetDashboardSummaryUseCase{
		loader: loader,
		clock:  clock,
		cache:  cache,
	}
}

// Execute computes the summary for the current month.
func (uc *GetDashboardSummaryUseCase) Execute(ctx context.Context, input GetDashboardSummaryInput) (*SummaryOutput, error) {
	month := valueobject.MonthOf(uc.clock.Now())
	cacheKey := fmt.Sprintf("summary:%s:%s", input.UserID, month.Key())

	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	snapshot, err := uc.loader.LoadMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, err
	}
	output := renderSummary(month.Key(), ComputeMonth(*snapshot, month))

	uc.toCache(ctx, cacheKey, output)
	return output, nil
}

func (uc *GetDashboardSummaryUseCase) fromCache(ctx context.Context, key string) *SummaryOutput {
	if uc.cache == nil {
		return nil
	}
	payload, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Debug("Dashboard summary cache read failed", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var output SummaryOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		slog.Debug("Dashboard summary cache payload invalid", "key", key, "error", err)
		return nil
	}
	return &output
}

func (uc *GetDashboardSummaryUseCase) toCache(ctx context.Context, key string, output *SummaryOutput) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(output)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, payload, summaryCacheTTL); err != nil {
		slog.Debug("Dashboard summary cache write failed", "key", key, "error", err)
	}
}
