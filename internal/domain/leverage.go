package domain

// Funding threshold per 8h interval above which longs are considered
// crowded (0.025% per 8h).
const fundingCrowdedThreshold = 0.00025

// ScoreLeverage folds open interest, funding and liquidation skew into
// one leverage-risk score. Negative means over-leveraged and fragile,
// positive means clean.
func ScoreLeverage(oi, marketCap, fundingBTC, fundingMajors Reading, liq *Liquidations) PillarScore {
	if !oi.Valid || !marketCap.Valid || marketCap.Value == 0 {
		return PillarScore{Value: 0, Label: LabelLeverageUnknown}
	}

	oiRatio := oi.Value / marketCap.Value

	var score float64
	var notes []Label

	switch {
	case oiRatio < 0.03:
		score++
		notes = append(notes, NoteOILow)
	case oiRatio <= 0.07:
		notes = append(notes, NoteOIModerate)
	default:
		score--
		notes = append(notes, NoteOIHigh)
	}

	if fundingBTC.Valid && fundingMajors.Valid {
		avg := (fundingBTC.Value + fundingMajors.Value) / 2
		switch {
		case avg > fundingCrowdedThreshold:
			score--
			notes = append(notes, NoteFundingCrowded)
		case avg > 0:
			// Bullish tilt but not extreme: note only.
			notes = append(notes, NoteFundingMild)
		case avg < 0:
			score++
			notes = append(notes, NoteFundingNegative)
		}
	}

	if liq != nil && liq.Total > 0 {
		if liq.Longs > 2*liq.Shorts {
			score += 0.5
			notes = append(notes, NoteLongsFlushed)
		} else if liq.Shorts > 2*liq.Longs {
			score -= 0.5
			notes = append(notes, NoteShortsSqueezed)
		}
	}

	score = clamp(score)

	return PillarScore{Value: score, Label: leverageLabel(score), Notes: notes}
}

func leverageLabel(score float64) Label {
	switch {
	case score >= 1.5:
		return LabelLeverageClean
	case score >= 0.5:
		return LabelLeverageFavor
	case score > -0.5:
		return LabelLeverageNeutral
	case score >= -1.5:
		return LabelLeverageElevated
	default:
		return LabelLeverageHighRisk
	}
}
