package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreFlows(t *testing.T) {
	testCases := []struct {
		name          string
		stableDom     Reading
		btcNetflow    Reading
		ethNetflow    Reading
		expectedScore float64
		expectedLabel Label
		expectedNotes []Label
	}{
		{
			name:          "all_missing_is_neutral",
			stableDom:     Missing(),
			btcNetflow:    Missing(),
			ethNetflow:    Missing(),
			expectedScore: 0,
			expectedLabel: LabelFlowsNeutral,
		},
		{
			name:          "healthy_dry_powder",
			stableDom:     Observed(14),
			expectedScore: 1,
			expectedLabel: LabelFlowsMild,
			expectedNotes: []Label{NoteStableDryPowder},
		},
		{
			name:          "dry_powder_band_edges",
			stableDom:     Observed(10),
			expectedScore: 1,
			expectedLabel: LabelFlowsMild,
			expectedNotes: []Label{NoteStableDryPowder},
		},
		{
			name:          "low_sidelined_capital",
			stableDom:     Observed(6),
			expectedScore: -0.5,
			expectedLabel: LabelFlowsAgainst,
			expectedNotes: []Label{NoteStableLow},
		},
		{
			name:          "stable_share_between_bands_is_note_only",
			stableDom:     Observed(9),
			expectedScore: 0,
			expectedLabel: LabelFlowsNeutral,
			expectedNotes: []Label{NoteStableNeutral},
		},
		{
			name:          "stable_share_above_band_is_note_only",
			stableDom:     Observed(22),
			expectedScore: 0,
			expectedLabel: LabelFlowsNeutral,
			expectedNotes: []Label{NoteStableNeutral},
		},
		{
			name:          "btc_outflow_accumulation",
			btcNetflow:    Observed(-500e6),
			expectedScore: 0.5,
			expectedLabel: LabelFlowsMild,
			expectedNotes: []Label{NoteBTCOutflow},
		},
		{
			name:          "btc_inflow_sell_pressure",
			btcNetflow:    Observed(500e6),
			expectedScore: -0.5,
			expectedLabel: LabelFlowsAgainst,
			expectedNotes: []Label{NoteBTCInflow},
		},
		{
			name:          "zero_netflow_no_signal",
			btcNetflow:    Observed(0),
			ethNetflow:    Observed(0),
			expectedScore: 0,
			expectedLabel: LabelFlowsNeutral,
		},
		{
			name:          "everything_supportive",
			stableDom:     Observed(12),
			btcNetflow:    Observed(-1e9),
			ethNetflow:    Observed(-200e6),
			expectedScore: 1.75,
			expectedLabel: LabelFlowsSupportive,
			expectedNotes: []Label{NoteStableDryPowder, NoteBTCOutflow, NoteETHOutflow},
		},
		{
			name:          "everything_adverse",
			stableDom:     Observed(5),
			btcNetflow:    Observed(1e9),
			ethNetflow:    Observed(200e6),
			expectedScore: -1.25,
			expectedLabel: LabelFlowsAgainst,
			expectedNotes: []Label{NoteStableLow, NoteBTCInflow, NoteETHInflow},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreFlows(tc.stableDom, tc.btcNetflow, tc.ethNetflow)
			assert.Equal(t, tc.expectedScore, got.Value)
			assert.Equal(t, tc.expectedLabel, got.Label)
			assert.Equal(t, tc.expectedNotes, got.Notes)
		})
	}
}
