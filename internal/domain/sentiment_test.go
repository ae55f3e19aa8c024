package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSentiment(t *testing.T) {
	testCases := []struct {
		name          string
		index         Reading
		expectedScore float64
		expectedLabel Label
	}{
		{"missing", Missing(), 0, LabelUnknown},
		{"zero_extreme_fear", Observed(0), 2, LabelSentimentExtremeFear},
		{"boundary_25_still_extreme_fear", Observed(25), 2, LabelSentimentExtremeFear},
		{"boundary_26_fear_neutral", Observed(26), 1, LabelSentimentFearNeutral},
		{"boundary_50_fear_neutral", Observed(50), 1, LabelSentimentFearNeutral},
		{"boundary_51_greed", Observed(51), -1, LabelSentimentGreed},
		{"boundary_75_greed", Observed(75), -1, LabelSentimentGreed},
		{"boundary_76_extreme_greed", Observed(76), -2, LabelSentimentExtremeGreed},
		{"hundred_extreme_greed", Observed(100), -2, LabelSentimentExtremeGreed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreSentiment(tc.index)
			assert.Equal(t, tc.expectedScore, got.Value)
			assert.Equal(t, tc.expectedLabel, got.Label)
		})
	}
}
