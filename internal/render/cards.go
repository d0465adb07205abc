package render

import (
	"strconv"

	"moviegrid/internal/models"
)

// Card is the rendered unit for one movie. PosterURL is empty when the entry
// has no cover art and no placeholder is configured; it never contains a
// path built from a null poster value.
type Card struct {
	Key         int    `json:"key" example:"550"`
	Title       string `json:"title" example:"Fight Club"`
	PosterURL   string `json:"poster_url,omitempty"`
	ReleaseDate string `json:"release_date" example:"1999-10-15"`
	Rating      string `json:"rating" example:"8.4/10"`
}

// Renderer turns a view snapshot into cards. It is a pure function of its
// inputs, so rendering the same snapshot twice yields identical output.
type Renderer struct {
	imageBaseURL   string
	placeholderURL string
}

// NewRenderer builds a renderer. imageBaseURL is the poster CDN prefix;
// placeholderURL may be empty, in which case no-poster cards carry no image.
func NewRenderer(imageBaseURL, placeholderURL string) *Renderer {
	return &Renderer{
		imageBaseURL:   imageBaseURL,
		placeholderURL: placeholderURL,
	}
}

// Cards maps movies to cards, preserving order. The card key is the movie id.
func (r *Renderer) Cards(movies []models.MovieSummary) []Card {
	cards := make([]Card, 0, len(movies))
	for _, m := range movies {
		card := Card{
			Key:         m.ID,
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			Rating:      FormatRating(m.VoteAverage),
		}
		if m.HasPoster() {
			card.PosterURL = r.imageBaseURL + m.PosterPath
		} else if r.placeholderURL != "" {
			card.PosterURL = r.placeholderURL
		}
		cards = append(cards, card)
	}
	return cards
}

// FormatRating renders a vote average as "{value}/10". Zero is a valid
// rating and renders as "0/10".
func FormatRating(voteAverage float64) string {
	return strconv.FormatFloat(voteAverage, 'f', -1, 64) + "/10"
}
