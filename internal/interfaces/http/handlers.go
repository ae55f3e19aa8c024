package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/application"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/data/facade"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/interfaces/output"
)

// Handlers serves the dashboard endpoints. Every request triggers a
// fresh render; caching happens below in the fetch layer.
type Handlers struct {
	renderer Renderer
}

func NewHandlers(renderer Renderer) *Handlers {
	return &Handlers{renderer: renderer}
}

type pillarView struct {
	Value float64  `json:"value"`
	Label string   `json:"label"`
	Notes []string `json:"notes,omitempty"`
}

type totalView struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type allocationSlice struct {
	Class   string `json:"class"`
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

type dashboardResponse struct {
	Policy     string            `json:"policy"`
	RenderedAt time.Time         `json:"rendered_at"`
	Snapshot   *facade.Snapshot  `json:"snapshot"`
	Pillars    []namedPillar     `json:"pillars"`
	Total      totalView         `json:"total"`
	Headline   string            `json:"headline"`
	Allocation []allocationSlice `json:"allocation"`
	Details    []string          `json:"details"`
}

type namedPillar struct {
	Name string `json:"name"`
	pillarView
}

// Dashboard returns the full rendered view as JSON with label keys
// already expanded to English text.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.renderer.Render(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("dashboard render failed")
		h.writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	h.writeJSON(w, http.StatusOK, buildResponse(view))
}

// Health reports liveness. It never touches the providers, so it stays
// green even when every upstream is down.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "market-dashboard",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func buildResponse(view *application.View) dashboardResponse {
	result := view.Result

	pillars := []namedPillar{
		{Name: "Cycle", pillarView: toPillarView(result.Pillars.Cycle)},
		{Name: "Sentiment", pillarView: toPillarView(result.Pillars.Sentiment)},
		{Name: "Rotation", pillarView: toPillarView(result.Pillars.Rotation)},
		{Name: "Leverage", pillarView: toPillarView(result.Pillars.Leverage)},
		{Name: "Flows", pillarView: toPillarView(result.Pillars.Flows)},
	}

	allocation := make([]allocationSlice, 0, len(domain.AssetClasses))
	for _, class := range domain.AssetClasses {
		allocation = append(allocation, allocationSlice{
			Class:   string(class),
			Name:    output.AssetText(class),
			Percent: result.Plan.Percent[class],
		})
	}

	details := make([]string, 0, len(result.Plan.Details))
	for _, d := range result.Plan.Details {
		details = append(details, output.DetailText(d))
	}

	return dashboardResponse{
		Policy:     string(view.Policy),
		RenderedAt: view.RenderedAt,
		Snapshot:   view.Snapshot,
		Pillars:    pillars,
		Total: totalView{
			Value: result.Total.Value,
			Label: output.Text(result.Total.Label),
		},
		Headline:   output.Text(result.Plan.Headline),
		Allocation: allocation,
		Details:    details,
	}
}

func toPillarView(p domain.PillarScore) pillarView {
	var notes []string
	for _, n := range p.Notes {
		notes = append(notes, output.Text(n))
	}
	return pillarView{Value: p.Value, Label: output.Text(p.Label), Notes: notes}
}
