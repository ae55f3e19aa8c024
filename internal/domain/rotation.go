package domain

// ScoreRotation rates BTC-season vs altseason from BTC dominance,
// refined by 30-day ETH/BTC relative performance when available.
func ScoreRotation(dominance, ethBTCChange30d Reading) PillarScore {
	if !dominance.Valid {
		return PillarScore{Value: 0, Label: LabelUnknown}
	}

	var score float64
	var label Label
	switch dom := dominance.Value; {
	case dom >= 55:
		score, label = -1, LabelRotationBTCDominant
	case dom >= 45:
		score, label = 0, LabelRotationBalanced
	default:
		score, label = 1, LabelRotationAltseason
	}

	if ethBTCChange30d.Valid {
		// >10% ETH outperformance strengthens the altseason signal.
		if ethBTCChange30d.Value > 0.1 {
			score += 0.5
		} else if ethBTCChange30d.Value < -0.1 {
			score -= 0.5
		}
	}

	return PillarScore{Value: score, Label: label}
}
