package output

import (
	"fmt"
	"io"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/application"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
)

// WriteReport renders a full dashboard view as a terminal report for
// the one-shot CLI path.
func WriteReport(w io.Writer, view *application.View) {
	snap := view.Snapshot
	result := view.Result

	fmt.Fprintf(w, "Daily Market Dashboard (%s policy)\n", view.Policy)
	fmt.Fprintf(w, "Rendered at %s\n\n", view.RenderedAt.Format("2006-01-02 15:04 UTC"))

	fmt.Fprintln(w, "Market snapshot")
	writeReading(w, "  BTC price (USD)", snap.BTCPrice, "%.0f")
	writeReading(w, "  BTC all-time high (USD)", snap.BTCATH, "%.0f")
	writeReading(w, "  BTC dominance (%)", snap.BTCDominance, "%.1f")
	writeReading(w, "  Total market cap (USD)", snap.TotalMarketCap, "%.0f")
	writeReading(w, "  Stablecoin dominance (%)", snap.StablecoinDominance, "%.2f")
	writeReading(w, "  Fear & Greed index", snap.SentimentIndex, "%.0f")
	writeReading(w, "  Open interest (USD)", snap.OpenInterest, "%.0f")
	if snap.Liquidations != nil {
		fmt.Fprintf(w, "  24h liquidations (USD): total %.0f, longs %.0f, shorts %.0f\n",
			snap.Liquidations.Total, snap.Liquidations.Longs, snap.Liquidations.Shorts)
	}
	if snap.OIDemo || snap.FundingDemo || snap.LiquidationsDemo {
		fmt.Fprintln(w, "  (derivatives figures are demo values; set COINGLASS_API_KEY for live data)")
	}

	fmt.Fprintln(w, "\nPillar scores")
	writePillar(w, "Cycle", result.Pillars.Cycle)
	writePillar(w, "Sentiment", result.Pillars.Sentiment)
	writePillar(w, "Rotation", result.Pillars.Rotation)
	writePillar(w, "Leverage", result.Pillars.Leverage)
	writePillar(w, "Flows", result.Pillars.Flows)

	fmt.Fprintf(w, "\nTotal score: %+.2f  %s\n", result.Total.Value, Text(result.Total.Label))

	fmt.Fprintf(w, "\nSuggested allocation: %s\n", Text(result.Plan.Headline))
	for _, class := range domain.AssetClasses {
		fmt.Fprintf(w, "  %-12s %3d%%\n", AssetText(class), result.Plan.Percent[class])
	}

	fmt.Fprintln(w, "\nWhy this stance")
	for _, d := range result.Plan.Details {
		fmt.Fprintf(w, "  - %s\n", DetailText(d))
	}

	if len(snap.News) > 0 {
		fmt.Fprintln(w, "\nMacro & crypto news")
		if snap.NewsDemo {
			fmt.Fprintln(w, "  (demo headlines; set NEWSAPI_KEY for live news)")
		}
		for _, item := range snap.News {
			fmt.Fprintf(w, "  [%s] %s\n", item.Category, item.Title)
			fmt.Fprintf(w, "    %s, %s\n", item.Source, item.PublishedAt.Format("2006-01-02 15:04 UTC"))
			if item.Why != "" {
				fmt.Fprintf(w, "    Why it matters: %s\n", item.Why)
			}
		}
	}
}

func writeReading(w io.Writer, name string, r domain.Reading, format string) {
	if r.Valid {
		fmt.Fprintf(w, "%s: "+format+"\n", name, r.Value)
	} else {
		fmt.Fprintf(w, "%s: N/A\n", name)
	}
}

func writePillar(w io.Writer, name string, p domain.PillarScore) {
	fmt.Fprintf(w, "  %-10s %+.2f  %s", name, p.Value, Text(p.Label))
	for _, note := range p.Notes {
		fmt.Fprintf(w, " %s", Text(note))
	}
	fmt.Fprintln(w)
}
