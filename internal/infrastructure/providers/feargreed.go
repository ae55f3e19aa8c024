package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/config"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
)

// FearGreed serves the alternative.me crypto Fear & Greed index.
type FearGreed struct {
	baseURL string
	client  *restClient
}

func NewFearGreed(cfg config.ProviderConfig) *FearGreed {
	return &FearGreed{
		baseURL: cfg.BaseURL,
		client:  newRESTClient("fear_greed", cfg),
	}
}

// SentimentReading is the latest index value plus the provider's own
// textual classification.
type SentimentReading struct {
	Index          domain.Reading
	Classification string
}

type fngResponse struct {
	Data []struct {
		Value               string `json:"value"` // the API serves numbers as strings
		ValueClassification string `json:"value_classification"`
	} `json:"data"`
}

func (f *FearGreed) Latest(ctx context.Context) (SentimentReading, error) {
	params := url.Values{
		"limit":  {"1"},
		"format": {"json"},
	}

	var resp fngResponse
	if err := f.client.getJSON(ctx, f.baseURL, params, nil, &resp); err != nil {
		return SentimentReading{}, err
	}

	if len(resp.Data) == 0 {
		return SentimentReading{}, fmt.Errorf("fear_greed: empty data array")
	}

	value, err := strconv.ParseFloat(resp.Data[0].Value, 64)
	if err != nil {
		return SentimentReading{}, fmt.Errorf("fear_greed: non-numeric index value %q: %w", resp.Data[0].Value, err)
	}

	log.Debug().
		Float64("index", value).
		Str("classification", resp.Data[0].ValueClassification).
		Msg("Fear & Greed index retrieved")

	return SentimentReading{
		Index:          domain.Observed(value),
		Classification: resp.Data[0].ValueClassification,
	}, nil
}
