package http

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Page serves the HTML dashboard. The page is rendered server-side
// from the same view the JSON endpoint uses.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	view, err := h.renderer.Render(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("page render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, buildResponse(view)); err != nil {
		log.Error().Err(err).Msg("execute page template")
	}
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Daily Market Dashboard</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 860px; color: #1a1a2e; }
  h1 { font-size: 1.4rem; }
  h2 { font-size: 1.1rem; margin-top: 1.6rem; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 0.35rem 0.75rem; border-bottom: 1px solid #e0e0e8; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .total { font-size: 1.2rem; font-weight: 600; margin-top: 1rem; }
  .headline { background: #f2f4f8; padding: 0.75rem 1rem; border-radius: 6px; }
  .muted { color: #70708a; font-size: 0.85rem; }
  ul { padding-left: 1.2rem; }
</style>
</head>
<body>
<h1>Daily Market Dashboard</h1>
<p class="muted">Policy: {{.Policy}} | Rendered {{.RenderedAt.Format "2006-01-02 15:04 UTC"}}</p>

<h2>Pillar scores</h2>
<table>
<tr><th>Pillar</th><th>Score</th><th>Assessment</th></tr>
{{range .Pillars}}<tr><td>{{.Name}}</td><td class="num">{{printf "%+.2f" .Value}}</td><td>{{.Label}}</td></tr>
{{end}}</table>

<p class="total">Total score: {{printf "%+.2f" .Total.Value}} &middot; {{.Total.Label}}</p>

<h2>Suggested allocation</h2>
<p class="headline">{{.Headline}}</p>
<table>
<tr><th>Asset class</th><th>Share</th></tr>
{{range .Allocation}}<tr><td>{{.Name}}</td><td class="num">{{.Percent}}%</td></tr>
{{end}}</table>

<h2>Why this stance</h2>
<ul>
{{range .Details}}<li>{{.}}</li>
{{end}}</ul>

{{if .Snapshot.News}}<h2>Macro &amp; crypto news</h2>
{{if .Snapshot.NewsDemo}}<p class="muted">Demo headlines; set NEWSAPI_KEY for live news.</p>{{end}}
<ul>
{{range .Snapshot.News}}<li><strong>[{{.Category}}]</strong> {{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}
<span class="muted">{{.Source}}, {{.PublishedAt.Format "2006-01-02 15:04 UTC"}}</span>
{{if .Summary}}<br>{{.Summary}}{{end}}
{{if .Why}}<br><em>Why it matters: {{.Why}}</em>{{end}}</li>
{{end}}</ul>
{{end}}

<p class="muted">Informational only, not financial advice. JSON at <a href="/api/dashboard">/api/dashboard</a>.</p>
</body>
</html>
`))
