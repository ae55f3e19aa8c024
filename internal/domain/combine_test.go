package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsSumToOne(t *testing.T) {
	require.NoError(t, ValidateWeights())
	sum := WeightCycle + WeightRotation + WeightLeverage + WeightSentiment + WeightFlows
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func pillarsWith(cycle, sentiment, rotation, leverage, flows float64) Pillars {
	return Pillars{
		Cycle:     PillarScore{Value: cycle},
		Sentiment: PillarScore{Value: sentiment},
		Rotation:  PillarScore{Value: rotation},
		Leverage:  PillarScore{Value: leverage},
		Flows:     PillarScore{Value: flows},
	}
}

func TestCombine(t *testing.T) {
	testCases := []struct {
		name          string
		pillars       Pillars
		expectedValue float64
		expectedLabel Label
	}{
		{
			name:          "all_neutral_is_mixed",
			pillars:       pillarsWith(0, 0, 0, 0, 0),
			expectedValue: 0,
			expectedLabel: LabelTotalMixed,
		},
		{
			name:          "max_bullish",
			pillars:       pillarsWith(3.5, 2, 1.5, 3, 3),
			expectedValue: 0.35*3.5 + 0.15*2 + 0.20*1.5 + 0.20*3 + 0.10*3,
			expectedLabel: LabelTotalBullish,
		},
		{
			name:          "constructive_lower_boundary",
			pillars:       pillarsWith(2, 2, 0, 1, 0.5),
			expectedValue: 0.35*2 + 0.15*2 + 0.20*1 + 0.10*0.5,
			expectedLabel: LabelTotalConstructive,
		},
		{
			name:          "defensive_band",
			pillars:       pillarsWith(-2, -1, -1, 0, 0),
			expectedValue: 0.35*-2 + 0.15*-1 + 0.20*-1,
			expectedLabel: LabelTotalDefensive,
		},
		{
			name:          "high_risk_band",
			pillars:       pillarsWith(-2, -2, -2, -3, -3),
			expectedValue: 0.35*-2 + 0.15*-2 + 0.20*-2 + 0.20*-3 + 0.10*-3,
			expectedLabel: LabelTotalHighRisk,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Combine(tc.pillars)
			assert.InDelta(t, tc.expectedValue, got.Value, 1e-12)
			assert.Equal(t, tc.expectedLabel, got.Label)
		})
	}
}

func TestTotalLabelBoundaries(t *testing.T) {
	assert.Equal(t, LabelTotalBullish, totalLabel(2.0))
	assert.Equal(t, LabelTotalConstructive, totalLabel(1.999))
	assert.Equal(t, LabelTotalConstructive, totalLabel(1.0))
	assert.Equal(t, LabelTotalMixed, totalLabel(0.999))
	assert.Equal(t, LabelTotalMixed, totalLabel(-0.499))
	assert.Equal(t, LabelTotalDefensive, totalLabel(-0.5))
	assert.Equal(t, LabelTotalDefensive, totalLabel(-1.5))
	assert.Equal(t, LabelTotalHighRisk, totalLabel(-1.501))
}
