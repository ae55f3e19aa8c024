package application

import (
	"context"
	"fmt"
	"time"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/data/cache"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/data/facade"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/infrastructure/providers"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/metrics"
)

// SnapshotSource is what the service needs from the fetch layer.
type SnapshotSource interface {
	Snapshot(ctx context.Context) *facade.Snapshot
}

// View is one full dashboard render: the raw readings and everything
// the scoring core derived from them.
type View struct {
	Snapshot   *facade.Snapshot `json:"snapshot"`
	Result     domain.Result    `json:"result"`
	Policy     domain.Variant   `json:"policy"`
	RenderedAt time.Time        `json:"rendered_at"`
}

// Service runs one score/allocation cycle per render. Stateless
// between renders; concurrent renders are independent.
type Service struct {
	source  SnapshotSource
	engine  *domain.Engine
	metrics *metrics.Registry
	now     func() time.Time
}

func NewService(source SnapshotSource, engine *domain.Engine, reg *metrics.Registry) *Service {
	return &Service{
		source:  source,
		engine:  engine,
		metrics: reg,
		now:     time.Now,
	}
}

// Render fetches a snapshot and runs the full pipeline.
func (s *Service) Render(ctx context.Context) (*View, error) {
	snap := s.source.Snapshot(ctx)
	now := s.now().UTC()

	result, err := s.engine.Evaluate(snap.Inputs(now))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ObserveResult(result)
	}

	return &View{
		Snapshot:   snap,
		Result:     result,
		Policy:     s.engine.Variant(),
		RenderedAt: now,
	}, nil
}

// Build wires the whole pipeline from configuration: providers, cache,
// facade, engine and metrics.
func Build(cfg *config.Config) (*Service, *metrics.Registry, error) {
	halving, err := cfg.Cycle.Halving()
	if err != nil {
		return nil, nil, err
	}

	engine, err := domain.NewEngine(domain.PolicyFor(domain.Variant(cfg.Policy), halving))
	if err != nil {
		return nil, nil, err
	}

	var snapshotCache cache.Cache
	if cfg.Cache.RedisAddr != "" {
		snapshotCache = cache.NewRedisFromAddr(cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
	} else {
		snapshotCache = cache.NewMemory()
	}

	f := facade.New(
		providers.NewCoinGecko(cfg.Providers.CoinGecko),
		providers.NewFearGreed(cfg.Providers.FearGreed),
		providers.NewCoinGlass(cfg.Providers.CoinGlass),
		providers.NewNews(cfg.Providers.News),
		snapshotCache,
		cfg.Cache.TTL(),
	)

	reg := metrics.New()
	f.Instrument(reg)

	return NewService(f, engine, reg), reg, nil
}
