package models

import (
	"time"
)

// MovieSummary is one entry of a fetched catalog page. Only the fields the
// grid consumes are kept; everything else in the upstream payload is ignored.
type MovieSummary struct {
	ID          int     `json:"id" example:"550"`
	Title       string  `json:"title" example:"Fight Club"`
	PosterPath  string  `json:"poster_path,omitempty" example:"/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	ReleaseDate string  `json:"release_date" example:"1999-10-15"`
	VoteAverage float64 `json:"vote_average" example:"8.4"`
}

// HasPoster reports whether the entry carries cover art. Upstream sends null
// for movies without a poster; that decodes to an empty path here.
func (m MovieSummary) HasPoster() bool {
	return m.PosterPath != ""
}

// CatalogMovie mirrors one element of the upstream "results" array.
// PosterPath is a pointer because the catalog sends an explicit null.
type CatalogMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// Summary converts the wire entry into the domain type.
func (c CatalogMovie) Summary() MovieSummary {
	s := MovieSummary{
		ID:          c.ID,
		Title:       c.Title,
		ReleaseDate: c.ReleaseDate,
		VoteAverage: c.VoteAverage,
	}
	if c.PosterPath != nil {
		s.PosterPath = *c.PosterPath
	}
	return s
}

// FetchLog is the diagnostic record persisted for every fetch resolution.
// It never stores movie payloads, only the outcome.
type FetchLog struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	FetchID      string    `gorm:"index" json:"fetch_id" example:"b2f1c9d4"`
	Status       string    `gorm:"index" json:"status" example:"success"`
	MovieCount   int       `json:"movie_count" example:"20"`
	ErrorKind    string    `json:"error_kind,omitempty" example:"upstream"`
	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
	DurationMS   int64     `json:"duration_ms" example:"412"`
	FetchedAt    time.Time `gorm:"index" json:"fetched_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (FetchLog) TableName() string {
	return "fetch_logs"
}

// FetchLog status values.
const (
	FetchStatusSuccess = "success"
	FetchStatusFailed  = "failed"
	FetchStatusStale   = "stale"
)
