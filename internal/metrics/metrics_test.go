package metrics

import (
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
)

func findFamily(t *testing.T, families []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric family %s not found", name)
	return nil
}

func TestObserveResult(t *testing.T) {
	reg := New()

	result := domain.Result{
		Pillars: domain.Pillars{
			Cycle:     domain.PillarScore{Value: 3},
			Sentiment: domain.PillarScore{Value: 2},
			Rotation:  domain.PillarScore{Value: -1},
			Leverage:  domain.PillarScore{Value: 1},
			Flows:     domain.PillarScore{Value: 1},
		},
		Total: domain.TotalScore{Value: 1.45},
	}
	reg.ObserveResult(result)
	reg.ObserveResult(result)

	families, err := reg.Gather().Gather()
	require.NoError(t, err)

	renders := findFamily(t, families, "dashboard_renders_total")
	assert.Equal(t, 2.0, renders.GetMetric()[0].GetCounter().GetValue())

	total := findFamily(t, families, "dashboard_total_score")
	assert.Equal(t, 1.45, total.GetMetric()[0].GetGauge().GetValue())

	pillars := findFamily(t, families, "dashboard_pillar_score")
	assert.Len(t, pillars.GetMetric(), 5)
	for _, m := range pillars.GetMetric() {
		if m.GetLabel()[0].GetValue() == "cycle" {
			assert.Equal(t, 3.0, m.GetGauge().GetValue())
		}
	}
}

func TestObserveFetch(t *testing.T) {
	reg := New()
	reg.ObserveFetch("coingecko", 120*time.Millisecond, nil)
	reg.ObserveFetch("coingecko", 80*time.Millisecond, errors.New("503"))
	reg.ObserveFetch("coinglass", 40*time.Millisecond, nil)

	families, err := reg.Gather().Gather()
	require.NoError(t, err)

	durations := findFamily(t, families, "dashboard_fetch_duration_seconds")
	assert.Len(t, durations.GetMetric(), 2)
	for _, m := range durations.GetMetric() {
		if m.GetLabel()[0].GetValue() == "coingecko" {
			assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
		}
	}

	errs := findFamily(t, families, "dashboard_provider_errors_total")
	require.Len(t, errs.GetMetric(), 1)
	assert.Equal(t, "coingecko", errs.GetMetric()[0].GetLabel()[0].GetValue())
	assert.Equal(t, 1.0, errs.GetMetric()[0].GetCounter().GetValue())
}
