package facade

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/data/cache"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/infrastructure/providers"
)

const snapshotKey = "market:snapshot"

// MarketSource is the CoinGecko surface the facade consumes.
type MarketSource interface {
	BitcoinMarket(ctx context.Context) (providers.BitcoinMarket, error)
	GlobalMarket(ctx context.Context) (providers.GlobalMarket, error)
}

// SentimentSource is the Fear & Greed surface.
type SentimentSource interface {
	Latest(ctx context.Context) (providers.SentimentReading, error)
}

// DerivativesSource is the CoinGlass surface.
type DerivativesSource interface {
	OpenInterest(ctx context.Context) (providers.OpenInterestData, error)
	Funding(ctx context.Context) (providers.FundingData, error)
	Liquidations(ctx context.Context) (providers.LiquidationData, error)
}

// NewsSource is the headlines surface.
type NewsSource interface {
	Headlines(ctx context.Context) (providers.NewsData, error)
}

// Snapshot is one batch of raw readings. Any field may be absent; a
// failed fetch leaves its fields absent rather than erroring.
type Snapshot struct {
	BTCPrice            domain.Reading       `json:"btc_price"`
	BTCATH              domain.Reading       `json:"btc_ath"`
	BTCDominance        domain.Reading       `json:"btc_dominance"`
	TotalMarketCap      domain.Reading       `json:"total_market_cap"`
	StablecoinDominance domain.Reading       `json:"stablecoin_dominance"`
	SentimentIndex      domain.Reading       `json:"sentiment_index"`
	SentimentText       string               `json:"sentiment_text,omitempty"`
	OpenInterest        domain.Reading       `json:"open_interest"`
	FundingBTC          domain.Reading       `json:"funding_btc"`
	FundingMajors       domain.Reading       `json:"funding_majors"`
	Liquidations        *domain.Liquidations `json:"liquidations,omitempty"`
	News                []providers.NewsItem `json:"news,omitempty"`
	OIDemo              bool                 `json:"oi_demo,omitempty"`
	FundingDemo         bool                 `json:"funding_demo,omitempty"`
	LiquidationsDemo    bool                 `json:"liquidations_demo,omitempty"`
	NewsDemo            bool                 `json:"news_demo,omitempty"`
	FetchedAt           time.Time            `json:"fetched_at"`
}

// Inputs converts the snapshot into the canonical scoring inputs.
// ETH/BTC relative performance and netflows have no feed yet and stay
// absent.
func (s *Snapshot) Inputs(now time.Time) domain.Inputs {
	return domain.Inputs{
		BTCPrice:            s.BTCPrice,
		BTCATH:              s.BTCATH,
		BTCDominance:        s.BTCDominance,
		TotalMarketCap:      s.TotalMarketCap,
		SentimentIndex:      s.SentimentIndex,
		OpenInterest:        s.OpenInterest,
		FundingBTC:          s.FundingBTC,
		FundingMajors:       s.FundingMajors,
		Liquidations:        s.Liquidations,
		StablecoinDominance: s.StablecoinDominance,
		Now:                 now,
	}
}

// Observer receives one event per upstream call so the fetch layer can
// be instrumented without depending on the metrics package.
type Observer interface {
	ObserveFetch(provider string, d time.Duration, err error)
}

// Facade assembles snapshots from the providers with a cache in
// front. Fetch failures degrade to absent readings, never to an error
// reaching the scoring core.
type Facade struct {
	market      MarketSource
	sentiment   SentimentSource
	derivatives DerivativesSource
	news        NewsSource
	cache       cache.Cache
	ttl         time.Duration
	observer    Observer
}

func New(market MarketSource, sentiment SentimentSource, derivatives DerivativesSource, news NewsSource, c cache.Cache, ttl time.Duration) *Facade {
	return &Facade{
		market:      market,
		sentiment:   sentiment,
		derivatives: derivatives,
		news:        news,
		cache:       c,
		ttl:         ttl,
	}
}

// Instrument attaches a fetch observer. Nil disables instrumentation.
func (f *Facade) Instrument(o Observer) { f.observer = o }

// Snapshot returns the current batch of readings, from cache when
// fresh enough.
func (f *Facade) Snapshot(ctx context.Context) *Snapshot {
	if f.cache != nil {
		if raw, ok := f.cache.Get(ctx, snapshotKey); ok {
			var snap Snapshot
			if err := json.Unmarshal(raw, &snap); err == nil {
				return &snap
			}
			log.Warn().Msg("cached snapshot is corrupt, refetching")
		}
	}

	snap := f.fetch(ctx)

	if f.cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			if err := f.cache.Set(ctx, snapshotKey, raw, f.ttl); err != nil {
				log.Warn().Err(err).Msg("snapshot cache write failed")
			}
		}
	}

	return snap
}

func (f *Facade) fetch(ctx context.Context) *Snapshot {
	snap := &Snapshot{FetchedAt: time.Now().UTC()}

	start := time.Now()
	btc, err := f.market.BitcoinMarket(ctx)
	f.observe("coingecko", start, err)
	if err != nil {
		log.Warn().Err(err).Msg("bitcoin market fetch failed, scoring without it")
	} else {
		snap.BTCPrice = btc.Price
		snap.BTCATH = btc.ATH
	}

	start = time.Now()
	global, err := f.market.GlobalMarket(ctx)
	f.observe("coingecko", start, err)
	if err != nil {
		log.Warn().Err(err).Msg("global market fetch failed, scoring without it")
	} else {
		snap.BTCDominance = global.BTCDominance
		snap.TotalMarketCap = global.TotalMarketCap
		snap.StablecoinDominance = global.StablecoinDominance
	}

	start = time.Now()
	sentiment, err := f.sentiment.Latest(ctx)
	f.observe("fear_greed", start, err)
	if err != nil {
		log.Warn().Err(err).Msg("sentiment fetch failed, scoring without it")
	} else {
		snap.SentimentIndex = sentiment.Index
		snap.SentimentText = sentiment.Classification
	}

	start = time.Now()
	oi, err := f.derivatives.OpenInterest(ctx)
	f.observe("coinglass", start, err)
	if err != nil {
		log.Warn().Err(err).Msg("open interest fetch failed, scoring without it")
	} else {
		snap.OpenInterest = oi.Value
		snap.OIDemo = oi.Demo
	}

	start = time.Now()
	funding, err := f.derivatives.Funding(ctx)
	f.observe("coinglass", start, err)
	if err != nil {
		log.Warn().Err(err).Msg("funding fetch failed, scoring without it")
	} else {
		snap.FundingBTC = funding.BTC
		snap.FundingMajors = funding.MajorsAvg
		snap.FundingDemo = funding.Demo
	}

	start = time.Now()
	liq, err := f.derivatives.Liquidations(ctx)
	f.observe("coinglass", start, err)
	if err != nil {
		log.Warn().Err(err).Msg("liquidations fetch failed, scoring without it")
	} else {
		breakdown := liq.Breakdown
		snap.Liquidations = &breakdown
		snap.LiquidationsDemo = liq.Demo
	}

	start = time.Now()
	news, err := f.news.Headlines(ctx)
	f.observe("newsapi", start, err)
	if err != nil {
		log.Warn().Err(err).Msg("news fetch failed, rendering without headlines")
	} else {
		snap.News = news.Items
		snap.NewsDemo = news.Demo
	}

	return snap
}

func (f *Facade) observe(provider string, start time.Time, err error) {
	if f.observer != nil {
		f.observer.ObserveFetch(provider, time.Since(start), err)
	}
}
