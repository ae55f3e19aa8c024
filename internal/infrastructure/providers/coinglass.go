package providers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
)

// CoinGlass serves derivatives metrics: open interest, funding rates
// and liquidations. The free dashboard runs without an API key, in
// which case the provider returns static demo values flagged Demo so
// the UI can say so.
type CoinGlass struct {
	baseURL string
	apiKey  string
	client  *restClient
}

func NewCoinGlass(cfg config.ProviderConfig) *CoinGlass {
	return &CoinGlass{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  newRESTClient("coinglass", cfg),
	}
}

// HasKey reports whether live derivatives data is configured.
func (c *CoinGlass) HasKey() bool { return c.apiKey != "" }

type OpenInterestData struct {
	Value domain.Reading // total OI in USD
	Demo  bool
}

type FundingData struct {
	BTC       domain.Reading // fraction per 8h
	MajorsAvg domain.Reading
	Demo      bool
}

type LiquidationData struct {
	Breakdown domain.Liquidations
	Demo      bool
}

type coinglassEnvelope struct {
	Code    string `json:"code"`
	Success bool   `json:"success"`
	Data    []struct {
		OpenInterest float64 `json:"openInterest"`
		Rate         float64 `json:"rate"`
		TotalVolUsd  float64 `json:"totalVolUsd"`
		LongVolUsd   float64 `json:"longVolUsd"`
		ShortVolUsd  float64 `json:"shortVolUsd"`
	} `json:"data"`
}

func (c *CoinGlass) headers() map[string]string {
	return map[string]string{"coinglassSecret": c.apiKey}
}

// OpenInterest returns the aggregate futures open interest in USD.
func (c *CoinGlass) OpenInterest(ctx context.Context) (OpenInterestData, error) {
	if !c.HasKey() {
		return OpenInterestData{Value: domain.Observed(28e9), Demo: true}, nil
	}

	params := url.Values{"symbol": {"BTC"}, "currency": {"USD"}}
	var resp coinglassEnvelope
	if err := c.client.getJSON(ctx, c.baseURL+"/futures/openInterest", params, c.headers(), &resp); err != nil {
		return OpenInterestData{}, err
	}

	total := 0.0
	for _, d := range resp.Data {
		total += d.OpenInterest
	}
	if total <= 0 {
		return OpenInterestData{}, fmt.Errorf("coinglass: no open interest in response")
	}

	log.Debug().Float64("open_interest", total).Msg("CoinGlass open interest retrieved")
	return OpenInterestData{Value: domain.Observed(total)}, nil
}

// Funding returns BTC and majors-average funding rates.
func (c *CoinGlass) Funding(ctx context.Context) (FundingData, error) {
	if !c.HasKey() {
		return FundingData{
			BTC:       domain.Observed(0.012 / 100),
			MajorsAvg: domain.Observed(0.020 / 100),
			Demo:      true,
		}, nil
	}

	params := url.Values{"symbol": {"BTC"}}
	var resp coinglassEnvelope
	if err := c.client.getJSON(ctx, c.baseURL+"/funding", params, c.headers(), &resp); err != nil {
		return FundingData{}, err
	}

	if len(resp.Data) == 0 {
		return FundingData{}, fmt.Errorf("coinglass: empty funding response")
	}

	// First entry is BTC; the rest average into the majors figure.
	btc := resp.Data[0].Rate
	majors := btc
	if len(resp.Data) > 1 {
		sum := 0.0
		for _, d := range resp.Data[1:] {
			sum += d.Rate
		}
		majors = sum / float64(len(resp.Data)-1)
	}

	return FundingData{
		BTC:       domain.Observed(btc),
		MajorsAvg: domain.Observed(majors),
	}, nil
}

// Liquidations returns the 24h long/short liquidation breakdown.
func (c *CoinGlass) Liquidations(ctx context.Context) (LiquidationData, error) {
	if !c.HasKey() {
		return LiquidationData{
			Breakdown: domain.Liquidations{Total: 180e6, Longs: 140e6, Shorts: 40e6},
			Demo:      true,
		}, nil
	}

	params := url.Values{"currency": {"USD"}}
	var resp coinglassEnvelope
	if err := c.client.getJSON(ctx, c.baseURL+"/liquidation", params, c.headers(), &resp); err != nil {
		return LiquidationData{}, err
	}

	if len(resp.Data) == 0 {
		return LiquidationData{}, fmt.Errorf("coinglass: empty liquidation response")
	}

	var breakdown domain.Liquidations
	for _, d := range resp.Data {
		breakdown.Total += d.TotalVolUsd
		breakdown.Longs += d.LongVolUsd
		breakdown.Shorts += d.ShortVolUsd
	}

	return LiquidationData{Breakdown: breakdown}, nil
}
