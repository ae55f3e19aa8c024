package domain

import "time"

// halvingBonusWindow is how long after a halving the market has
// historically stayed in its strong accumulation-to-bull region.
const halvingBonusWindow = 270 * 24 * time.Hour

// ScoreCycle rates where the market sits in its macro cycle from the
// distance of the BTC price to its all-time high, with an optional
// bonus around a configured halving anchor date. A zero anchor
// disables the bonus entirely.
func ScoreCycle(price, ath Reading, now time.Time, halving time.Time) PillarScore {
	if !price.Valid || !ath.Valid || price.Value == 0 || ath.Value == 0 {
		return PillarScore{Value: 0, Label: LabelUnknown}
	}

	// -0.4 means 40% below ATH.
	pctFromATH := price.Value/ath.Value - 1

	var base float64
	var label Label
	switch {
	case pctFromATH <= -0.5:
		base, label = 3, LabelCycleDeepValue
	case pctFromATH <= -0.2:
		base, label = 2, LabelCycleEarlyBull
	case pctFromATH <= 0.1:
		base, label = 0, LabelCycleMidLateBull
	default:
		base, label = -2, LabelCycleEuphoria
	}

	if !halving.IsZero() {
		sinceHalving := now.Sub(halving)
		if sinceHalving < 0 || sinceHalving <= halvingBonusWindow {
			// Pre-halving accumulation or the post-halving bull window.
			base += 0.5
		}
	}

	return PillarScore{Value: base, Label: label}
}
