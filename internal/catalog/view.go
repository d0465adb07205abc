// Package catalog holds the movie-list view: the state container that owns
// the fetched popular-movie list and its lifecycle.
package catalog

import (
	"context"
	"sync"
	"time"

	"moviegrid/internal/models"
	"moviegrid/internal/services"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Status is the view's observable phase. An empty loaded list and a fetch in
// flight are distinct states on purpose.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// Recorder persists fetch diagnostics. Implementations must not block the
// view longer than their own timeouts; a nil Recorder disables persistence.
type Recorder interface {
	Create(ctx context.Context, log *models.FetchLog) error
}

// Snapshot is an immutable copy of the view state for rendering.
type Snapshot struct {
	Status    Status
	Movies    []models.MovieSummary
	LastError string
}

// View fetches one page of popular movies per activation and holds the
// result. Invariants:
//   - exactly one fetch is issued per Activate call
//   - a successful fetch replaces the list wholesale
//   - a failed fetch leaves the list exactly as it was
//   - a response from a superseded activation is discarded (token guard)
type View struct {
	fetcher  services.CatalogService
	recorder Recorder
	logger   *logrus.Logger

	mu      sync.Mutex
	status  Status
	movies  []models.MovieSummary
	lastErr string
	token   uint64
	cancel  context.CancelFunc
}

func NewView(fetcher services.CatalogService, recorder Recorder, logger *logrus.Logger) *View {
	return &View{
		fetcher:  fetcher,
		recorder: recorder,
		logger:   logger,
		status:   StatusIdle,
	}
}

// Activate issues one asynchronous fetch and returns immediately. Calling it
// again before the previous fetch resolves supersedes that fetch: its result
// will be discarded when it arrives.
func (v *View) Activate(ctx context.Context) {
	v.mu.Lock()
	v.token++
	token := v.token
	fetchID := uuid.New().String()
	v.status = StatusLoading
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.mu.Unlock()

	v.logger.WithField("fetch_id", fetchID).Info("Fetching popular movies")

	go v.fetch(fetchCtx, token, fetchID)
}

// Deactivate cancels any in-flight fetch and releases the list. A response
// that resolves afterwards is stale and will not be applied.
func (v *View) Deactivate() {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.token++
	v.status = StatusIdle
	v.movies = nil
	v.lastErr = ""
	v.mu.Unlock()
}

// Snapshot returns a copy of the current state. The returned slice is owned
// by the caller.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	movies := make([]models.MovieSummary, len(v.movies))
	copy(movies, v.movies)

	return Snapshot{
		Status:    v.status,
		Movies:    movies,
		LastError: v.lastErr,
	}
}

func (v *View) fetch(ctx context.Context, token uint64, fetchID string) {
	start := time.Now()
	movies, err := v.fetcher.FetchPopular(ctx)
	duration := time.Since(start)

	v.mu.Lock()
	stale := token != v.token
	if !stale {
		if err != nil {
			v.status = StatusFailed
			v.lastErr = services.ErrorKind(err)
		} else {
			v.status = StatusLoaded
			v.movies = movies
			v.lastErr = ""
		}
	}
	v.mu.Unlock()

	log := v.logger.WithFields(logrus.Fields{
		"fetch_id":    fetchID,
		"duration_ms": duration.Milliseconds(),
	})

	entry := &models.FetchLog{
		FetchID:    fetchID,
		Status:     models.FetchStatusSuccess,
		MovieCount: len(movies),
		DurationMS: duration.Milliseconds(),
		FetchedAt:  start.UTC(),
	}

	switch {
	case stale:
		entry.Status = models.FetchStatusStale
		entry.MovieCount = 0
		log.Info("Discarded stale fetch result")
	case err != nil:
		entry.Status = models.FetchStatusFailed
		entry.MovieCount = 0
		entry.ErrorKind = services.ErrorKind(err)
		entry.ErrorMessage = err.Error()
		log.WithError(err).Error("Failed to fetch popular movies")
	default:
		log.WithField("count", len(movies)).Info("Popular movies loaded")
	}

	if v.recorder != nil {
		if recErr := v.recorder.Create(context.Background(), entry); recErr != nil {
			log.WithError(recErr).Warn("Failed to record fetch log")
		}
	}
}
