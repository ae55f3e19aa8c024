package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRotation(t *testing.T) {
	testCases := []struct {
		name          string
		dominance     Reading
		ethBTC30d     Reading
		expectedScore float64
		expectedLabel Label
	}{
		{"missing_dominance", Missing(), Observed(0.2), 0, LabelUnknown},
		{"btc_dominant", Observed(60), Missing(), -1, LabelRotationBTCDominant},
		{"btc_dominant_boundary_55", Observed(55), Missing(), -1, LabelRotationBTCDominant},
		{"balanced_boundary_45", Observed(45), Missing(), 0, LabelRotationBalanced},
		{"balanced_midrange", Observed(50), Missing(), 0, LabelRotationBalanced},
		{"altseason", Observed(40), Missing(), 1, LabelRotationAltseason},
		{"eth_outperformance_bonus", Observed(40), Observed(0.15), 1.5, LabelRotationAltseason},
		{"eth_underperformance_penalty", Observed(60), Observed(-0.15), -1.5, LabelRotationBTCDominant},
		{"eth_ratio_within_band_no_change", Observed(50), Observed(0.05), 0, LabelRotationBalanced},
		{"eth_ratio_exact_threshold_no_change", Observed(50), Observed(0.1), 0, LabelRotationBalanced},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreRotation(tc.dominance, tc.ethBTC30d)
			assert.Equal(t, tc.expectedScore, got.Value)
			assert.Equal(t, tc.expectedLabel, got.Label)
		})
	}
}
