package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"moviegrid/internal/config"
	"moviegrid/internal/models"

	"github.com/sirupsen/logrus"
)

// Fetch failure kinds. Callers distinguish them with errors.Is; all three are
// handled identically by the view (log, keep prior state).
var (
	ErrNetwork   = errors.New("catalog request failed")
	ErrUpstream  = errors.New("catalog returned non-success status")
	ErrMalformed = errors.New("catalog response malformed")
)

// ErrorKind maps a fetch error to its taxonomy label for diagnostics.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrNetwork):
		return "network"
	default:
		return "unknown"
	}
}

type CatalogService interface {
	// FetchPopular retrieves one page of popular movies in upstream order.
	FetchPopular(ctx context.Context) ([]models.MovieSummary, error)
}

type catalogService struct {
	apiKey     string
	baseURL    string
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewCatalogService(cfg *config.CatalogConfig, logger *logrus.Logger) CatalogService {
	return &catalogService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// redact strips the api_key value from an error's text. Every fetch error is
// logged and persisted verbatim downstream, so the credential must not
// survive in it.
func (s *catalogService) redact(err error) string {
	msg := err.Error()
	if s.apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, s.apiKey, "[redacted]")
}

func (s *catalogService) FetchPopular(ctx context.Context) ([]models.MovieSummary, error) {
	url := fmt.Sprintf("%s/movie/popular?api_key=%s", s.baseURL, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %s", ErrNetwork, s.redact(err))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// Transport errors echo the request URL, api_key included; the
		// credential is scrubbed before the error can reach logs or
		// fetch logs.
		return nil, fmt.Errorf("%w: %s", ErrNetwork, s.redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrMalformed, err)
	}
	if len(payload.Results) == 0 || string(payload.Results) == "null" {
		return nil, fmt.Errorf("%w: missing results", ErrMalformed)
	}

	var entries []models.CatalogMovie
	if err := json.Unmarshal(payload.Results, &entries); err != nil {
		return nil, fmt.Errorf("%w: results is not a sequence: %v", ErrMalformed, err)
	}

	movies := make([]models.MovieSummary, 0, len(entries))
	for _, entry := range entries {
		movies = append(movies, entry.Summary())
	}

	s.logger.WithField("count", len(movies)).Debug("Fetched popular movies from catalog")
	return movies, nil
}
