package output

import (
	"fmt"
	"strings"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
)

// The scoring core emits locale-neutral label keys; this package owns
// the English rendering. Another locale is another table.

var labelText = map[domain.Label]string{
	domain.LabelUnknown: "Unknown",

	domain.LabelCycleDeepValue:   "Deep Value / Early Cycle",
	domain.LabelCycleEarlyBull:   "Early / Mid Bull",
	domain.LabelCycleMidLateBull: "Mid / Late Bull",
	domain.LabelCycleEuphoria:    "Euphoria / Late Cycle",

	domain.LabelSentimentExtremeFear:  "Extreme Fear (Contrarian Bullish)",
	domain.LabelSentimentFearNeutral:  "Fear / Neutral",
	domain.LabelSentimentGreed:        "Greed",
	domain.LabelSentimentExtremeGreed: "Extreme Greed (Risky)",

	domain.LabelRotationBTCDominant: "BTC Dominant, altcoins face headwind",
	domain.LabelRotationBalanced:    "No clear altseason, mixed rotation",
	domain.LabelRotationAltseason:   "Altseason Zone, higher altcoin beta",

	domain.LabelLeverageUnknown:  "Unknown leverage conditions",
	domain.LabelLeverageClean:    "Clean / low leverage, safer environment.",
	domain.LabelLeverageFavor:    "Slightly favorable leverage conditions.",
	domain.LabelLeverageNeutral:  "Neutral, normal leverage conditions.",
	domain.LabelLeverageElevated: "Elevated leverage, be cautious with alts.",
	domain.LabelLeverageHighRisk: "High leverage risk, avoid aggressive alt exposure.",

	domain.NoteOILow:           "Low OI relative to market cap, less crowded leverage.",
	domain.NoteOIModerate:      "Moderate OI, normal leverage environment.",
	domain.NoteOIHigh:          "High OI, crowded positions, higher liquidation risk.",
	domain.NoteFundingCrowded:  "High positive funding, many leveraged longs.",
	domain.NoteFundingMild:     "Mild positive funding, bullish positioning but not extreme.",
	domain.NoteFundingNegative: "Negative funding, market leaning short, contrarian bullish.",
	domain.NoteLongsFlushed:    "Recent long liquidations, some excess leveraged longs flushed.",
	domain.NoteShortsSqueezed:  "Recent short liquidations, shorts squeezed, risk of pullback.",

	domain.LabelFlowsSupportive: "Supportive capital flows, environment favors upside.",
	domain.LabelFlowsMild:       "Mildly supportive flows.",
	domain.LabelFlowsNeutral:    "Neutral flows.",
	domain.LabelFlowsAgainst:    "Flows slightly against risk assets.",
	domain.LabelFlowsAdverse:    "Adverse flows, higher risk of downside.",

	domain.NoteStableDryPowder: "Meaningful stablecoin 'dry powder' available.",
	domain.NoteStableLow:       "Lower stablecoin share, less sidelined capital.",
	domain.NoteStableNeutral:   "Stablecoin share neutral.",
	domain.NoteBTCOutflow:      "BTC net outflows, accumulation signal.",
	domain.NoteBTCInflow:       "BTC net inflows, potential sell pressure.",
	domain.NoteETHOutflow:      "ETH net outflows, accumulation signal.",
	domain.NoteETHInflow:       "ETH net inflows, potential sell pressure.",

	domain.LabelTotalBullish:      "Bullish: accumulate BTC, selective alts.",
	domain.LabelTotalConstructive: "Constructive: BTC-led with room for majors.",
	domain.LabelTotalMixed:        "Mixed: favor BTC, reduce alts.",
	domain.LabelTotalDefensive:    "Defensive: reduce alts, increase stables.",
	domain.LabelTotalHighRisk:     "High risk: avoid alts, keep BTC + stables.",

	domain.HeadlineBullish:      "Bullish setup: focus on BTC, with selective exposure to strong majors and altcoins.",
	domain.HeadlineConstructive: "Constructive market: prioritize BTC and quality majors, keep altcoins sized modestly.",
	domain.HeadlineMixed:        "Mixed signals: lean into BTC, reduce altcoin exposure, keep some dry powder.",
	domain.HeadlineDefensive:    "Defensive stance: avoid new altcoin risk, increase stablecoins and keep core BTC.",
	domain.HeadlineHighRisk:     "High-risk environment: avoid altcoins, focus on capital preservation.",
}

var detailFormat = map[domain.Label]string{
	domain.DetailCycleEarly:    "Cycle suggests early/mid-bull positioning, upside still available.",
	domain.DetailCycleLate:     "Cycle suggests late-stage or euphoric conditions, downside risk increases.",
	domain.DetailDominanceHigh: "BTC dominance is high and/or rising, market is BTC-led.",
	domain.DetailDominanceLow:  "BTC dominance is low, altcoins can move faster but are riskier.",
	domain.DetailLeverage:      "Leverage conditions: %s",
	domain.DetailSentiment:     "Sentiment: %s",
	domain.DetailFlows:         "Flows: %s",
}

var assetClassText = map[domain.AssetClass]string{
	domain.AssetBTC:     "BTC",
	domain.AssetMajors:  "ETH / majors",
	domain.AssetAlts:    "Altcoins",
	domain.AssetStables: "Stablecoins",
}

// Text renders a label key; unmapped keys fall back to the raw key so
// a missed translation is visible, not a crash.
func Text(l domain.Label) string {
	if s, ok := labelText[l]; ok {
		return s
	}
	return string(l)
}

// AssetText renders an asset class name.
func AssetText(a domain.AssetClass) string {
	if s, ok := assetClassText[a]; ok {
		return s
	}
	return string(a)
}

// DetailText renders one narrative line, expanding the pillar label
// argument and appending its notes in order.
func DetailText(d domain.Detail) string {
	format, ok := detailFormat[d.Key]
	if !ok {
		return string(d.Key)
	}

	line := format
	if strings.Contains(format, "%s") {
		line = fmt.Sprintf(format, Text(d.Arg))
	}

	for _, note := range d.Notes {
		line += " " + Text(note)
	}
	return line
}
