package providers

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
)

// stablecoinKeys are the entries of CoinGecko's market_cap_percentage
// map that approximate stablecoin dominance.
var stablecoinKeys = []string{"usdt", "usdc", "dai", "busd", "tusd"}

// CoinGecko serves BTC market data and the global market overview.
type CoinGecko struct {
	baseURL string
	client  *restClient
}

func NewCoinGecko(cfg config.ProviderConfig) *CoinGecko {
	return &CoinGecko{
		baseURL: cfg.BaseURL,
		client:  newRESTClient("coingecko", cfg),
	}
}

// BitcoinMarket is the slice of /coins/bitcoin the scorers consume.
type BitcoinMarket struct {
	Price domain.Reading
	ATH   domain.Reading
}

// GlobalMarket is the slice of /global the scorers consume.
type GlobalMarket struct {
	BTCDominance        domain.Reading
	TotalMarketCap      domain.Reading
	StablecoinDominance domain.Reading
}

type bitcoinResponse struct {
	MarketData struct {
		CurrentPrice map[string]float64 `json:"current_price"`
		ATH          map[string]float64 `json:"ath"`
	} `json:"market_data"`
}

type globalResponse struct {
	Data struct {
		MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
		TotalMarketCap      map[string]float64 `json:"total_market_cap"`
	} `json:"data"`
}

func (g *CoinGecko) BitcoinMarket(ctx context.Context) (BitcoinMarket, error) {
	params := url.Values{
		"localization":   {"false"},
		"tickers":        {"false"},
		"market_data":    {"true"},
		"community_data": {"false"},
		"developer_data": {"false"},
		"sparkline":      {"false"},
	}

	var resp bitcoinResponse
	if err := g.client.getJSON(ctx, g.baseURL+"/coins/bitcoin", params, nil, &resp); err != nil {
		return BitcoinMarket{}, err
	}

	var market BitcoinMarket
	if price, ok := resp.MarketData.CurrentPrice["usd"]; ok {
		market.Price = domain.Observed(price)
	}
	if ath, ok := resp.MarketData.ATH["usd"]; ok {
		market.ATH = domain.Observed(ath)
	}

	log.Debug().
		Float64("price", market.Price.Value).
		Float64("ath", market.ATH.Value).
		Msg("CoinGecko bitcoin market retrieved")

	return market, nil
}

func (g *CoinGecko) GlobalMarket(ctx context.Context) (GlobalMarket, error) {
	var resp globalResponse
	if err := g.client.getJSON(ctx, g.baseURL+"/global", nil, nil, &resp); err != nil {
		return GlobalMarket{}, err
	}

	var market GlobalMarket
	if dom, ok := resp.Data.MarketCapPercentage["btc"]; ok {
		market.BTCDominance = domain.Observed(dom)
	}
	if mcap, ok := resp.Data.TotalMarketCap["usd"]; ok {
		market.TotalMarketCap = domain.Observed(mcap)
	}

	// Rough stablecoin dominance: the stablecoins CoinGecko exposes in
	// the percentage map, when it exposes any.
	stablesPct := 0.0
	found := false
	for _, key := range stablecoinKeys {
		if pct, ok := resp.Data.MarketCapPercentage[key]; ok && pct > 0 {
			stablesPct += pct
			found = true
		}
	}
	if found {
		market.StablecoinDominance = domain.Observed(stablesPct)
	}

	log.Debug().
		Float64("btc_dominance", market.BTCDominance.Value).
		Bool("stablecoins_found", found).
		Msg("CoinGecko global market retrieved")

	return market, nil
}
