package domain

// AssetClass identifies one slice of the suggested portfolio.
type AssetClass string

const (
	AssetBTC     AssetClass = "btc"
	AssetMajors  AssetClass = "eth_majors"
	AssetAlts    AssetClass = "altcoins"
	AssetStables AssetClass = "stablecoins"
)

// AssetClasses is the display order of the allocation slices.
var AssetClasses = []AssetClass{AssetBTC, AssetMajors, AssetAlts, AssetStables}

// Detail is one narrative line of the plan: a template key plus an
// optional pillar label argument and its notes. Rendering to prose is
// the presentation layer's job.
type Detail struct {
	Key   Label   `json:"key"`
	Arg   Label   `json:"arg,omitempty"`
	Notes []Label `json:"notes,omitempty"`
}

// AllocationPlan is a discrete portfolio stance. Percentages always
// sum to 100.
type AllocationPlan struct {
	Percent  map[AssetClass]int `json:"percent"`
	Headline Label              `json:"headline"`
	Details  []Detail           `json:"details"`
}

// One predefined table per total-score bracket.
var allocationTables = map[Label]struct {
	percent  map[AssetClass]int
	headline Label
}{
	LabelTotalBullish: {
		percent:  map[AssetClass]int{AssetBTC: 50, AssetMajors: 25, AssetAlts: 15, AssetStables: 10},
		headline: HeadlineBullish,
	},
	LabelTotalConstructive: {
		percent:  map[AssetClass]int{AssetBTC: 55, AssetMajors: 25, AssetAlts: 10, AssetStables: 10},
		headline: HeadlineConstructive,
	},
	LabelTotalMixed: {
		percent:  map[AssetClass]int{AssetBTC: 60, AssetMajors: 20, AssetAlts: 5, AssetStables: 15},
		headline: HeadlineMixed,
	},
	LabelTotalDefensive: {
		percent:  map[AssetClass]int{AssetBTC: 50, AssetMajors: 15, AssetAlts: 0, AssetStables: 35},
		headline: HeadlineDefensive,
	},
	LabelTotalHighRisk: {
		percent:  map[AssetClass]int{AssetBTC: 40, AssetMajors: 10, AssetAlts: 0, AssetStables: 50},
		headline: HeadlineHighRisk,
	},
}

// BuildPlan selects the allocation for the total-score bracket and
// assembles the narrative details from the pillar results. Pure and
// deterministic: identical inputs always yield an identical plan.
func BuildPlan(total TotalScore, pillars Pillars, dominance Reading) AllocationPlan {
	table := allocationTables[total.Label]

	percent := make(map[AssetClass]int, len(table.percent))
	for class, pct := range table.percent {
		percent[class] = pct
	}

	var details []Detail

	if pillars.Cycle.Value >= 2 {
		details = append(details, Detail{Key: DetailCycleEarly})
	} else if pillars.Cycle.Value <= -1 {
		details = append(details, Detail{Key: DetailCycleLate})
	}

	// A zero dominance reading is a placeholder, not a market share.
	if dominance.Valid && dominance.Value > 0 {
		if dominance.Value >= 55 {
			details = append(details, Detail{Key: DetailDominanceHigh})
		} else if dominance.Value <= 45 {
			details = append(details, Detail{Key: DetailDominanceLow})
		}
	}

	details = append(details,
		Detail{Key: DetailLeverage, Arg: pillars.Leverage.Label, Notes: pillars.Leverage.Notes},
		Detail{Key: DetailSentiment, Arg: pillars.Sentiment.Label},
		Detail{Key: DetailFlows, Arg: pillars.Flows.Label, Notes: pillars.Flows.Notes},
	)

	return AllocationPlan{
		Percent:  percent,
		Headline: table.headline,
		Details:  details,
	}
}
