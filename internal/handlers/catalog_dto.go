package handlers

import "moviegrid/internal/render"

// MovieListResponse is the JSON shape of the movie grid: the view status plus
// the ordered cards from the last successful fetch.
type MovieListResponse struct {
	ViewStatus string        `json:"view_status" example:"loaded"`
	LastError  string        `json:"last_error,omitempty" example:"upstream"`
	Cards      []render.Card `json:"cards"`
}
