package domain

import "time"

// Variant tags a scoring policy implementation.
type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantExtended Variant = "extended"
)

// ScoringPolicy maps one batch of readings to the five pillar scores.
// The combiner and allocation policy operate uniformly regardless of
// how many pillars a variant actually evaluates.
type ScoringPolicy interface {
	Variant() Variant
	Score(in Inputs) Pillars
}

// ExtendedPolicy evaluates all five pillars. This is the canonical
// policy.
type ExtendedPolicy struct {
	// Halving is the cycle-anchor date for the cycle bonus window.
	// Zero disables the adjustment.
	Halving time.Time
}

func (p ExtendedPolicy) Variant() Variant { return VariantExtended }

func (p ExtendedPolicy) Score(in Inputs) Pillars {
	return Pillars{
		Cycle:     ScoreCycle(in.BTCPrice, in.BTCATH, in.Now, p.Halving),
		Sentiment: ScoreSentiment(in.SentimentIndex),
		Rotation:  ScoreRotation(in.BTCDominance, in.ETHBTCChange30d),
		Leverage:  ScoreLeverage(in.OpenInterest, in.TotalMarketCap, in.FundingBTC, in.FundingMajors, in.Liquidations),
		Flows:     ScoreFlows(in.StablecoinDominance, in.BTCNetflow, in.ETHNetflow),
	}
}

// BasicPolicy evaluates only cycle, sentiment and rotation and holds
// leverage and flows at their neutral zero, so the same weights and
// allocation tables apply unchanged.
type BasicPolicy struct {
	Halving time.Time
}

func (p BasicPolicy) Variant() Variant { return VariantBasic }

func (p BasicPolicy) Score(in Inputs) Pillars {
	return Pillars{
		Cycle:     ScoreCycle(in.BTCPrice, in.BTCATH, in.Now, p.Halving),
		Sentiment: ScoreSentiment(in.SentimentIndex),
		Rotation:  ScoreRotation(in.BTCDominance, in.ETHBTCChange30d),
		Leverage:  PillarScore{Value: 0, Label: LabelLeverageUnknown},
		Flows:     PillarScore{Value: 0, Label: LabelFlowsNeutral},
	}
}

// PolicyFor returns the policy implementation for a variant tag,
// defaulting to the extended one.
func PolicyFor(v Variant, halving time.Time) ScoringPolicy {
	if v == VariantBasic {
		return BasicPolicy{Halving: halving}
	}
	return ExtendedPolicy{Halving: halving}
}
