package domain

import (
	"fmt"
	"math"
)

// Fixed pillar weights. Thresholds and weights are deliberately
// constants, not tuned parameters.
const (
	WeightCycle     = 0.35
	WeightRotation  = 0.20
	WeightLeverage  = 0.20
	WeightSentiment = 0.15
	WeightFlows     = 0.10
)

const weightSumTolerance = 1e-9

// Pillars holds the five pillar scores of one render.
type Pillars struct {
	Cycle     PillarScore `json:"cycle"`
	Sentiment PillarScore `json:"sentiment"`
	Rotation  PillarScore `json:"rotation"`
	Leverage  PillarScore `json:"leverage"`
	Flows     PillarScore `json:"flows"`
}

// ValidateWeights checks the weight-sum invariant. The combiner is
// only meaningful when the weights form a convex combination.
func ValidateWeights() error {
	sum := WeightCycle + WeightRotation + WeightLeverage + WeightSentiment + WeightFlows
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("pillar weights sum %.12f, want 1.0", sum)
	}
	return nil
}

// Combine folds the five pillar scores into the total market score and
// its classification bracket.
func Combine(p Pillars) TotalScore {
	total := WeightCycle*p.Cycle.Value +
		WeightRotation*p.Rotation.Value +
		WeightLeverage*p.Leverage.Value +
		WeightSentiment*p.Sentiment.Value +
		WeightFlows*p.Flows.Value

	return TotalScore{Value: total, Label: totalLabel(total)}
}

func totalLabel(total float64) Label {
	switch {
	case total >= 2.0:
		return LabelTotalBullish
	case total >= 1.0:
		return LabelTotalConstructive
	case total > -0.5:
		return LabelTotalMixed
	case total >= -1.5:
		return LabelTotalDefensive
	default:
		return LabelTotalHighRisk
	}
}
