package domain

// ScoreFlows rates the capital-flows backdrop from stablecoin "dry
// powder" and net exchange flows. Negative netflow means coins leaving
// exchanges, which reads as accumulation.
func ScoreFlows(stableDominance, btcNetflow, ethNetflow Reading) PillarScore {
	var score float64
	var notes []Label

	if stableDominance.Valid {
		switch dom := stableDominance.Value; {
		case dom >= 10 && dom <= 18:
			score++
			notes = append(notes, NoteStableDryPowder)
		case dom < 8:
			score -= 0.5
			notes = append(notes, NoteStableLow)
		default:
			notes = append(notes, NoteStableNeutral)
		}
	}

	if btcNetflow.Valid {
		if btcNetflow.Value < 0 {
			score += 0.5
			notes = append(notes, NoteBTCOutflow)
		} else if btcNetflow.Value > 0 {
			score -= 0.5
			notes = append(notes, NoteBTCInflow)
		}
	}

	if ethNetflow.Valid {
		if ethNetflow.Value < 0 {
			score += 0.25
			notes = append(notes, NoteETHOutflow)
		} else if ethNetflow.Value > 0 {
			score -= 0.25
			notes = append(notes, NoteETHInflow)
		}
	}

	score = clamp(score)

	return PillarScore{Value: score, Label: flowsLabel(score), Notes: notes}
}

func flowsLabel(score float64) Label {
	switch {
	case score >= 1.5:
		return LabelFlowsSupportive
	case score >= 0.5:
		return LabelFlowsMild
	case score > -0.5:
		return LabelFlowsNeutral
	case score >= -1.5:
		return LabelFlowsAgainst
	default:
		return LabelFlowsAdverse
	}
}
