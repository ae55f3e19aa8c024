package domain

// Label is a locale-neutral identifier for a score classification or
// an explanatory note. The presentation layer owns the translation to
// display text, the core never emits prose.
type Label string

const (
	LabelUnknown Label = "unknown"

	// Cycle pillar
	LabelCycleDeepValue   Label = "cycle_deep_value_early"
	LabelCycleEarlyBull   Label = "cycle_early_mid_bull"
	LabelCycleMidLateBull Label = "cycle_mid_late_bull"
	LabelCycleEuphoria    Label = "cycle_euphoria_late"

	// Sentiment pillar (contrarian)
	LabelSentimentExtremeFear  Label = "sentiment_extreme_fear"
	LabelSentimentFearNeutral  Label = "sentiment_fear_neutral"
	LabelSentimentGreed        Label = "sentiment_greed"
	LabelSentimentExtremeGreed Label = "sentiment_extreme_greed"

	// Rotation pillar
	LabelRotationBTCDominant Label = "rotation_btc_dominant"
	LabelRotationBalanced    Label = "rotation_balanced"
	LabelRotationAltseason   Label = "rotation_altseason"

	// Leverage pillar
	LabelLeverageUnknown  Label = "leverage_unknown"
	LabelLeverageClean    Label = "leverage_clean"
	LabelLeverageFavor    Label = "leverage_slightly_favorable"
	LabelLeverageNeutral  Label = "leverage_neutral"
	LabelLeverageElevated Label = "leverage_elevated"
	LabelLeverageHighRisk Label = "leverage_high_risk"

	// Leverage notes, appended in evaluation order
	NoteOILow           Label = "note_oi_low"
	NoteOIModerate      Label = "note_oi_moderate"
	NoteOIHigh          Label = "note_oi_high"
	NoteFundingCrowded  Label = "note_funding_crowded_longs"
	NoteFundingMild     Label = "note_funding_mild_positive"
	NoteFundingNegative Label = "note_funding_negative"
	NoteLongsFlushed    Label = "note_longs_flushed"
	NoteShortsSqueezed  Label = "note_shorts_squeezed"

	// Flows pillar
	LabelFlowsSupportive Label = "flows_supportive"
	LabelFlowsMild       Label = "flows_mildly_supportive"
	LabelFlowsNeutral    Label = "flows_neutral"
	LabelFlowsAgainst    Label = "flows_slightly_against"
	LabelFlowsAdverse    Label = "flows_adverse"

	// Flows notes
	NoteStableDryPowder Label = "note_stable_dry_powder"
	NoteStableLow       Label = "note_stable_low"
	NoteStableNeutral   Label = "note_stable_neutral"
	NoteBTCOutflow      Label = "note_btc_outflow"
	NoteBTCInflow       Label = "note_btc_inflow"
	NoteETHOutflow      Label = "note_eth_outflow"
	NoteETHInflow       Label = "note_eth_inflow"

	// Total score classification
	LabelTotalBullish      Label = "total_bullish"
	LabelTotalConstructive Label = "total_constructive"
	LabelTotalMixed        Label = "total_mixed"
	LabelTotalDefensive    Label = "total_defensive"
	LabelTotalHighRisk     Label = "total_high_risk"

	// Allocation headlines, one per total-score bracket
	HeadlineBullish      Label = "headline_bullish"
	HeadlineConstructive Label = "headline_constructive"
	HeadlineMixed        Label = "headline_mixed"
	HeadlineDefensive    Label = "headline_defensive"
	HeadlineHighRisk     Label = "headline_high_risk"

	// Allocation narrative details
	DetailCycleEarly     Label = "detail_cycle_early"
	DetailCycleLate      Label = "detail_cycle_late"
	DetailDominanceHigh  Label = "detail_dominance_high"
	DetailDominanceLow   Label = "detail_dominance_low"
	DetailLeverage       Label = "detail_leverage"
	DetailSentiment      Label = "detail_sentiment"
	DetailFlows          Label = "detail_flows"
)

// PillarScore is one pillar's bounded score plus its classification
// and ordered explanatory notes. Immutable once produced.
type PillarScore struct {
	Value float64 `json:"value"`
	Label Label   `json:"label"`
	Notes []Label `json:"notes,omitempty"`
}

// TotalScore is the weighted combination of the five pillars.
type TotalScore struct {
	Value float64 `json:"value"`
	Label Label   `json:"label"`
}
