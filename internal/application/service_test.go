package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/data/facade"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/metrics"
)

type staticSource struct {
	snap *facade.Snapshot
}

func (s *staticSource) Snapshot(context.Context) *facade.Snapshot { return s.snap }

func newTestService(t *testing.T, snap *facade.Snapshot) *Service {
	t.Helper()
	engine, err := domain.NewEngine(domain.ExtendedPolicy{})
	require.NoError(t, err)
	svc := NewService(&staticSource{snap: snap}, engine, metrics.New())
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_Render(t *testing.T) {
	snap := &facade.Snapshot{
		BTCPrice:            domain.Observed(30_000),
		BTCATH:              domain.Observed(69_000),
		BTCDominance:        domain.Observed(60),
		SentimentIndex:      domain.Observed(15),
		OpenInterest:        domain.Observed(20e9),
		TotalMarketCap:      domain.Observed(1000e9),
		StablecoinDominance: domain.Observed(14),
		FetchedAt:           time.Now(),
	}
	svc := newTestService(t, snap)

	view, err := svc.Render(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.VariantExtended, view.Policy)
	assert.InDelta(t, 1.45, view.Result.Total.Value, 1e-12)
	assert.Equal(t, domain.LabelTotalConstructive, view.Result.Total.Label)
	assert.Equal(t, snap, view.Snapshot)
	assert.Equal(t, 2025, view.RenderedAt.Year())
}

func TestService_RenderEmptySnapshot(t *testing.T) {
	svc := newTestService(t, &facade.Snapshot{FetchedAt: time.Now()})

	view, err := svc.Render(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.LabelTotalMixed, view.Result.Total.Label)
	assert.Equal(t, domain.LabelUnknown, view.Result.Pillars.Cycle.Label)
}

func TestBuildFromDefaultConfig(t *testing.T) {
	svc, reg, err := Build(config.Default())
	require.NoError(t, err)
	assert.NotNil(t, svc)
	assert.NotNil(t, reg)
}

func TestBuildBasicPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Policy = "basic"

	svc, _, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantBasic, svc.engine.Variant())
}
