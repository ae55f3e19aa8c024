package domain

// ScoreSentiment applies contrarian scoring to the Fear & Greed index
// (0-100): extreme fear is the buy signal, extreme greed the risk.
func ScoreSentiment(index Reading) PillarScore {
	if !index.Valid {
		return PillarScore{Value: 0, Label: LabelUnknown}
	}

	v := index.Value
	switch {
	case v <= 25:
		return PillarScore{Value: 2, Label: LabelSentimentExtremeFear}
	case v <= 50:
		return PillarScore{Value: 1, Label: LabelSentimentFearNeutral}
	case v <= 75:
		return PillarScore{Value: -1, Label: LabelSentimentGreed}
	default:
		return PillarScore{Value: -2, Label: LabelSentimentExtremeGreed}
	}
}
