package providers

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
)

// News categories, rough keyword buckets over the headline.
const (
	NewsCategoryMacro      = "Macro"
	NewsCategoryCrypto     = "Crypto"
	NewsCategoryFlows      = "Flows / ETFs"
	NewsCategoryRegulation = "Regulation"
)

// NewsItem is one headline on the macro/crypto radar.
type NewsItem struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	Why         string    `json:"why,omitempty"`
	Source      string    `json:"source"`
	URL         string    `json:"url,omitempty"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
}

type NewsData struct {
	Items []NewsItem
	Demo  bool
}

// News serves macro and crypto headlines from NewsAPI. Without an API
// key it returns static demo items flagged Demo, like the derivatives
// provider does.
type News struct {
	baseURL string
	apiKey  string
	client  *restClient
}

func NewNews(cfg config.ProviderConfig) *News {
	return &News{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  newRESTClient("newsapi", cfg),
	}
}

// HasKey reports whether live headlines are configured.
func (n *News) HasKey() bool { return n.apiKey != "" }

const newsDefaultWhy = "Potential impact on risk appetite and capital flows into crypto."

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Headlines returns the latest macro/crypto items, newest first as the
// API sorts them.
func (n *News) Headlines(ctx context.Context) (NewsData, error) {
	if !n.HasKey() {
		return NewsData{Items: demoNews(time.Now().UTC()), Demo: true}, nil
	}

	params := url.Values{
		"q":        {"crypto OR bitcoin OR ethereum OR blockchain OR \"digital assets\""},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
		"pageSize": {"10"},
		"apiKey":   {n.apiKey},
	}
	var resp newsAPIResponse
	if err := n.client.getJSON(ctx, n.baseURL+"/everything", params, nil, &resp); err != nil {
		return NewsData{}, err
	}

	items := make([]NewsItem, 0, len(resp.Articles))
	for _, art := range resp.Articles {
		title := art.Title
		if title == "" {
			title = "No title"
		}
		source := art.Source.Name
		if source == "" {
			source = "Unknown"
		}
		published, err := time.Parse(time.RFC3339, art.PublishedAt)
		if err != nil {
			published = time.Now().UTC()
		}

		items = append(items, NewsItem{
			Title:       title,
			Summary:     art.Description,
			Why:         newsDefaultWhy,
			Source:      source,
			URL:         art.URL,
			Category:    categorizeHeadline(title),
			PublishedAt: published,
		})
	}

	log.Debug().Int("items", len(items)).Msg("NewsAPI headlines retrieved")
	return NewsData{Items: items}, nil
}

var newsCategoryKeywords = []struct {
	category string
	keywords []string
}{
	{NewsCategoryMacro, []string{"fed", "inflation", "rates", "bond", "economy", "macro"}},
	{NewsCategoryFlows, []string{"etf", "flows", "inflows", "outflows"}},
	{NewsCategoryRegulation, []string{"regulation", "sec", "mica", "law", "legal"}},
}

func categorizeHeadline(title string) string {
	lower := strings.ToLower(title)
	for _, bucket := range newsCategoryKeywords {
		for _, k := range bucket.keywords {
			if strings.Contains(lower, k) {
				return bucket.category
			}
		}
	}
	return NewsCategoryCrypto
}

func demoNews(now time.Time) []NewsItem {
	return []NewsItem{
		{
			Title:       "Fed signals potential rate cuts as inflation cools",
			Summary:     "The US Federal Reserve hints that if inflation keeps trending lower, rate cuts may be considered in the coming year.",
			Why:         "Lower rates usually support risk assets (stocks & crypto) as cash and bonds become less attractive.",
			Source:      "Demo / Example",
			URL:         "https://www.federalreserve.gov",
			Category:    NewsCategoryMacro,
			PublishedAt: now,
		},
		{
			Title:       "Bitcoin ETFs record strong weekly inflows",
			Summary:     "Spot Bitcoin ETFs saw significant net inflows this week, indicating continued institutional demand.",
			Why:         "Consistent ETF inflows suggest that larger, long-term players are accumulating BTC.",
			Source:      "Demo / Example",
			URL:         "https://www.coindesk.com",
			Category:    NewsCategoryFlows,
			PublishedAt: now,
		},
		{
			Title:       "EU moves forward with MiCA crypto regulation framework",
			Summary:     "The European Union advances its MiCA regulatory framework aimed at exchanges and stablecoin issuers.",
			Why:         "Clear regulation can be long-term bullish for crypto adoption, but may pressure specific tokens in the short term.",
			Source:      "Demo / Example",
			URL:         "https://www.reuters.com",
			Category:    NewsCategoryRegulation,
			PublishedAt: now,
		},
	}
}
