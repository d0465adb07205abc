package render

import (
	"fmt"
	"html/template"
	"io"

	"moviegrid/internal/catalog"
)

var gridTemplate = template.Must(template.New("grid").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Popular Movies</title>
<style>
body { font-family: sans-serif; background: #141414; color: #eee; margin: 0; padding: 24px; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 16px; }
.card { background: #1f1f1f; border-radius: 8px; overflow: hidden; }
.card img { width: 100%; display: block; }
.card .body { padding: 12px; }
.card h3 { margin: 0 0 4px; font-size: 1rem; }
.card p { margin: 0; font-size: 0.85rem; color: #aaa; }
.notice { color: #aaa; padding: 24px 0; }
</style>
</head>
<body>
<h1>Popular Movies</h1>
{{if eq .Status "loading"}}<p class="notice">Loading…</p>{{end}}
{{if eq .Status "failed"}}<p class="notice">Could not load movies. Showing last known results.</p>{{end}}
<div class="grid">
{{range .Cards}}<div class="card" data-key="{{.Key}}">
{{if .PosterURL}}<img src="{{.PosterURL}}" alt="{{.Title}}">{{end}}
<div class="body">
<h3>{{.Title}}</h3>
<p>{{.ReleaseDate}}</p>
<p>{{.Rating}}</p>
</div>
</div>
{{end}}</div>
</body>
</html>
`))

type gridData struct {
	Status string
	Cards  []Card
}

// Grid writes the HTML grid page for a view snapshot.
func (r *Renderer) Grid(w io.Writer, snap catalog.Snapshot) error {
	data := gridData{
		Status: string(snap.Status),
		Cards:  r.Cards(snap.Movies),
	}
	if err := gridTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render grid: %w", err)
	}
	return nil
}
