package render

import (
	"bytes"
	"strings"
	"testing"

	"moviegrid/internal/catalog"
	"moviegrid/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderGrid(t *testing.T, r *Renderer, snap catalog.Snapshot) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Grid(&buf, snap))
	return buf.String()
}

func TestGrid_RendersCardsInOrder(t *testing.T) {
	r := NewRenderer(imageBase, "")

	html := renderGrid(t, r, catalog.Snapshot{
		Status: catalog.StatusLoaded,
		Movies: []models.MovieSummary{
			{ID: 2, Title: "Beta", PosterPath: "/b.jpg", ReleaseDate: "2021-02-02", VoteAverage: 7.5},
			{ID: 1, Title: "Alpha", PosterPath: "/a.jpg", ReleaseDate: "2020-01-01", VoteAverage: 8.1},
		},
	})

	assert.Contains(t, html, `data-key="2"`)
	assert.Contains(t, html, `data-key="1"`)
	assert.Less(t, strings.Index(html, `data-key="2"`), strings.Index(html, `data-key="1"`))

	assert.Contains(t, html, imageBase+"/b.jpg")
	assert.Contains(t, html, "8.1/10")
	assert.Contains(t, html, "2020-01-01")
}

func TestGrid_NoImageElementForMissingPoster(t *testing.T) {
	r := NewRenderer(imageBase, "")

	html := renderGrid(t, r, catalog.Snapshot{
		Status: catalog.StatusLoaded,
		Movies: []models.MovieSummary{
			{ID: 7, Title: "NoArt", ReleaseDate: "2018-03-03", VoteAverage: 5},
		},
	})

	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "null")
	assert.Contains(t, html, "NoArt")
	assert.Contains(t, html, "5/10")
}

func TestGrid_EmptyAndLoadingStates(t *testing.T) {
	r := NewRenderer(imageBase, "")

	loaded := renderGrid(t, r, catalog.Snapshot{Status: catalog.StatusLoaded})
	assert.NotContains(t, loaded, "Loading")

	loading := renderGrid(t, r, catalog.Snapshot{Status: catalog.StatusLoading})
	assert.Contains(t, loading, "Loading")

	failed := renderGrid(t, r, catalog.Snapshot{
		Status: catalog.StatusFailed,
		Movies: []models.MovieSummary{{ID: 1, Title: "Kept"}},
	})
	assert.Contains(t, failed, "Could not load movies")
	// prior results stay on screen after a failed refresh
	assert.Contains(t, failed, "Kept")
}

func TestGrid_EscapesTitles(t *testing.T) {
	r := NewRenderer(imageBase, "")

	html := renderGrid(t, r, catalog.Snapshot{
		Status: catalog.StatusLoaded,
		Movies: []models.MovieSummary{{ID: 1, Title: `<script>alert("x")</script>`}},
	})

	assert.NotContains(t, html, "<script>")
}
