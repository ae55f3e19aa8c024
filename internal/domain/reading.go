package domain

import (
	"fmt"
	"math"
	"time"
)

// Reading is an optional numeric observation from an external feed.
// Absence is a first-class value: scorers degrade to a neutral result
// instead of failing when a reading is missing.
type Reading struct {
	Value float64
	Valid bool
}

// Observed wraps a present numeric value.
func Observed(v float64) Reading {
	return Reading{Value: v, Valid: true}
}

// Missing returns an absent reading.
func Missing() Reading {
	return Reading{}
}

// Liquidations is the 24h forced-closure breakdown in USD.
type Liquidations struct {
	Total  float64
	Longs  float64
	Shorts float64
}

// Inputs is the canonical batch of readings one dashboard render
// consumes. Every field may be absent.
type Inputs struct {
	BTCPrice            Reading
	BTCATH              Reading
	BTCDominance        Reading // percent of total market cap
	TotalMarketCap      Reading // USD
	SentimentIndex      Reading // Fear & Greed, 0-100
	ETHBTCChange30d     Reading // 30d ETH/BTC relative performance, fraction
	OpenInterest        Reading // aggregate futures OI, USD
	FundingBTC          Reading // fraction per funding interval
	FundingMajors       Reading // majors average, fraction per interval
	Liquidations        *Liquidations
	StablecoinDominance Reading // percent of total market cap
	BTCNetflow          Reading // net exchange flow USD, negative = outflow
	ETHNetflow          Reading // net exchange flow USD, negative = outflow
	Now                 time.Time
}

// Validate rejects malformed numerics at the boundary so the pure
// scorers never see them. Absent readings are always valid.
func (in Inputs) Validate() error {
	checks := []struct {
		name    string
		r       Reading
		lo, hi  float64
		bounded bool
	}{
		{name: "btc_price", r: in.BTCPrice, lo: 0, bounded: false},
		{name: "btc_ath", r: in.BTCATH, lo: 0, bounded: false},
		{name: "btc_dominance", r: in.BTCDominance, lo: 0, hi: 100, bounded: true},
		{name: "total_market_cap", r: in.TotalMarketCap, lo: 0, bounded: false},
		{name: "sentiment_index", r: in.SentimentIndex, lo: 0, hi: 100, bounded: true},
		{name: "eth_btc_change_30d", r: in.ETHBTCChange30d, lo: math.Inf(-1), bounded: false},
		{name: "open_interest", r: in.OpenInterest, lo: 0, bounded: false},
		{name: "funding_btc", r: in.FundingBTC, lo: math.Inf(-1), bounded: false},
		{name: "funding_majors", r: in.FundingMajors, lo: math.Inf(-1), bounded: false},
		{name: "stablecoin_dominance", r: in.StablecoinDominance, lo: 0, hi: 100, bounded: true},
		{name: "btc_netflow", r: in.BTCNetflow, lo: math.Inf(-1), bounded: false},
		{name: "eth_netflow", r: in.ETHNetflow, lo: math.Inf(-1), bounded: false},
	}

	for _, c := range checks {
		if !c.r.Valid {
			continue
		}
		v := c.r.Value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("reading %s is not a finite number: %v", c.name, v)
		}
		if v < c.lo {
			return fmt.Errorf("reading %s below lower bound %g: %g", c.name, c.lo, v)
		}
		if c.bounded && v > c.hi {
			return fmt.Errorf("reading %s above upper bound %g: %g", c.name, c.hi, v)
		}
	}

	if in.Liquidations != nil {
		liq := in.Liquidations
		for name, v := range map[string]float64{
			"liquidations_total":  liq.Total,
			"liquidations_longs":  liq.Longs,
			"liquidations_shorts": liq.Shorts,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("reading %s malformed: %v", name, v)
			}
		}
	}

	return nil
}

// clamp bounds a score to the canonical [-3, +3] pillar range.
func clamp(score float64) float64 {
	if score > 3 {
		return 3
	}
	if score < -3 {
		return -3
	}
	return score
}
