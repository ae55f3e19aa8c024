package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationTablesSumTo100(t *testing.T) {
	brackets := []Label{
		LabelTotalBullish,
		LabelTotalConstructive,
		LabelTotalMixed,
		LabelTotalDefensive,
		LabelTotalHighRisk,
	}
	require.Len(t, allocationTables, len(brackets))

	for _, bracket := range brackets {
		table, ok := allocationTables[bracket]
		require.True(t, ok, "no allocation table for %s", bracket)

		sum := 0
		for _, pct := range table.percent {
			assert.GreaterOrEqual(t, pct, 0)
			sum += pct
		}
		assert.Equal(t, 100, sum, "allocation for %s must sum to 100", bracket)
		assert.Len(t, table.percent, len(AssetClasses))
	}
}

func TestBuildPlan_TableSelection(t *testing.T) {
	pillars := pillarsWith(0, 0, 0, 0, 0)

	testCases := []struct {
		name             string
		total            TotalScore
		expectedBTC      int
		expectedStables  int
		expectedHeadline Label
	}{
		{"bullish", TotalScore{Value: 2.3, Label: LabelTotalBullish}, 50, 10, HeadlineBullish},
		{"constructive", TotalScore{Value: 1.4, Label: LabelTotalConstructive}, 55, 10, HeadlineConstructive},
		{"mixed", TotalScore{Value: 0.2, Label: LabelTotalMixed}, 60, 15, HeadlineMixed},
		{"defensive", TotalScore{Value: -1.0, Label: LabelTotalDefensive}, 50, 35, HeadlineDefensive},
		{"high_risk", TotalScore{Value: -2.0, Label: LabelTotalHighRisk}, 40, 50, HeadlineHighRisk},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan := BuildPlan(tc.total, pillars, Missing())
			assert.Equal(t, tc.expectedBTC, plan.Percent[AssetBTC])
			assert.Equal(t, tc.expectedStables, plan.Percent[AssetStables])
			assert.Equal(t, tc.expectedHeadline, plan.Headline)
		})
	}
}

func TestBuildPlan_DetailAssembly(t *testing.T) {
	pillars := Pillars{
		Cycle:     PillarScore{Value: 3, Label: LabelCycleDeepValue},
		Sentiment: PillarScore{Value: 2, Label: LabelSentimentExtremeFear},
		Rotation:  PillarScore{Value: -1, Label: LabelRotationBTCDominant},
		Leverage:  PillarScore{Value: 1, Label: LabelLeverageFavor, Notes: []Label{NoteOILow}},
		Flows:     PillarScore{Value: 1, Label: LabelFlowsMild, Notes: []Label{NoteStableDryPowder}},
	}
	total := Combine(pillars)

	plan := BuildPlan(total, pillars, Observed(60))

	require.Len(t, plan.Details, 5)
	assert.Equal(t, DetailCycleEarly, plan.Details[0].Key)
	assert.Equal(t, DetailDominanceHigh, plan.Details[1].Key)
	assert.Equal(t, DetailLeverage, plan.Details[2].Key)
	assert.Equal(t, LabelLeverageFavor, plan.Details[2].Arg)
	assert.Equal(t, []Label{NoteOILow}, plan.Details[2].Notes)
	assert.Equal(t, DetailSentiment, plan.Details[3].Key)
	assert.Equal(t, LabelSentimentExtremeFear, plan.Details[3].Arg)
	assert.Equal(t, DetailFlows, plan.Details[4].Key)
}

func TestBuildPlan_ZeroDominanceSkipsDominanceDetail(t *testing.T) {
	pillars := pillarsWith(0, 0, 0, 0, 0)
	total := Combine(pillars)

	plan := BuildPlan(total, pillars, Observed(0))

	for _, d := range plan.Details {
		assert.NotEqual(t, DetailDominanceLow, d.Key)
		assert.NotEqual(t, DetailDominanceHigh, d.Key)
	}
}

func TestBuildPlan_LateCycleAndLowDominanceDetails(t *testing.T) {
	pillars := Pillars{
		Cycle:    PillarScore{Value: -2, Label: LabelCycleEuphoria},
		Leverage: PillarScore{Value: 0, Label: LabelLeverageNeutral},
	}
	total := Combine(pillars)

	plan := BuildPlan(total, pillars, Observed(42))

	require.GreaterOrEqual(t, len(plan.Details), 2)
	assert.Equal(t, DetailCycleLate, plan.Details[0].Key)
	assert.Equal(t, DetailDominanceLow, plan.Details[1].Key)
}
