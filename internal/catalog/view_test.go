package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"moviegrid/internal/models"
	"moviegrid/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context) ([]models.MovieSummary, error)

func (f fetcherFunc) FetchPopular(ctx context.Context) ([]models.MovieSummary, error) {
	return f(ctx)
}

type memRecorder struct {
	mu      sync.Mutex
	entries []models.FetchLog
}

func (r *memRecorder) Create(ctx context.Context, log *models.FetchLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *memRecorder) byStatus(status string) []models.FetchLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.FetchLog
	for _, e := range r.entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func someMovies() []models.MovieSummary {
	return []models.MovieSummary{
		{ID: 1, Title: "Alpha", PosterPath: "/a.jpg", ReleaseDate: "2020-01-01", VoteAverage: 8.1},
		{ID: 2, Title: "Beta", ReleaseDate: "2021-06-15", VoteAverage: 0},
	}
}

func waitForStatus(t *testing.T, v *View, want Status) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return v.Snapshot().Status == want
	}, 2*time.Second, 5*time.Millisecond)
	return v.Snapshot()
}

func TestView_ActivateLoadsMovies(t *testing.T) {
	fetched := someMovies()
	rec := &memRecorder{}
	v := NewView(fetcherFunc(func(ctx context.Context) ([]models.MovieSummary, error) {
		return fetched, nil
	}), rec, testLogger())

	assert.Equal(t, StatusIdle, v.Snapshot().Status)

	v.Activate(context.Background())
	snap := waitForStatus(t, v, StatusLoaded)

	// order matches the fetch result exactly
	assert.Equal(t, fetched, snap.Movies)
	assert.Empty(t, snap.LastError)

	require.Eventually(t, func() bool {
		return len(rec.byStatus(models.FetchStatusSuccess)) == 1
	}, 2*time.Second, 5*time.Millisecond)
	entry := rec.byStatus(models.FetchStatusSuccess)[0]
	assert.Equal(t, 2, entry.MovieCount)
	assert.NotEmpty(t, entry.FetchID)
}

func TestView_LoadingIsDistinctFromLoadedEmpty(t *testing.T) {
	release := make(chan struct{})
	v := NewView(fetcherFunc(func(ctx context.Context) ([]models.MovieSummary, error) {
		<-release
		return []models.MovieSummary{}, nil
	}), nil, testLogger())

	v.Activate(context.Background())
	assert.Equal(t, StatusLoading, v.Snapshot().Status)
	assert.Empty(t, v.Snapshot().Movies)

	close(release)
	snap := waitForStatus(t, v, StatusLoaded)
	assert.Empty(t, snap.Movies)
}

func TestView_FailureLeavesStateUntouched(t *testing.T) {
	var fail atomic.Bool
	rec := &memRecorder{}
	v := NewView(fetcherFunc(func(ctx context.Context) ([]models.MovieSummary, error) {
		if fail.Load() {
			return nil, fmt.Errorf("%w: status 503", services.ErrUpstream)
		}
		return someMovies(), nil
	}), rec, testLogger())

	v.Activate(context.Background())
	before := waitForStatus(t, v, StatusLoaded)

	fail.Store(true)
	v.Activate(context.Background())
	after := waitForStatus(t, v, StatusFailed)

	// the list is exactly what it was before the failed fetch
	assert.Equal(t, before.Movies, after.Movies)
	assert.Equal(t, "upstream", after.LastError)

	require.Eventually(t, func() bool {
		return len(rec.byStatus(models.FetchStatusFailed)) == 1
	}, 2*time.Second, 5*time.Millisecond)
	entry := rec.byStatus(models.FetchStatusFailed)[0]
	assert.Equal(t, "upstream", entry.ErrorKind)
	assert.Zero(t, entry.MovieCount)
}

func TestView_FailureWithEmptyPriorState(t *testing.T) {
	v := NewView(fetcherFunc(func(ctx context.Context) ([]models.MovieSummary, error) {
		return nil, fmt.Errorf("%w: status 401", services.ErrUpstream)
	}), nil, testLogger())

	v.Activate(context.Background())
	snap := waitForStatus(t, v, StatusFailed)
	assert.Empty(t, snap.Movies)
}

func TestView_StaleResponseDiscarded(t *testing.T) {
	firstRelease := make(chan struct{})
	var call atomic.Int32
	rec := &memRecorder{}

	stale := []models.MovieSummary{{ID: 99, Title: "Stale"}}
	fresh := []models.MovieSummary{{ID: 1, Title: "Fresh"}}

	v := NewView(fetcherFunc(func(ctx context.Context) ([]models.MovieSummary, error) {
		if call.Add(1) == 1 {
			<-firstRelease
			return stale, nil
		}
		return fresh, nil
	}), rec, testLogger())

	v.Activate(context.Background())
	v.Activate(context.Background())

	snap := waitForStatus(t, v, StatusLoaded)
	assert.Equal(t, fresh, snap.Movies)

	// let the superseded fetch resolve; its result must not be applied
	close(firstRelease)
	require.Eventually(t, func() bool {
		return len(rec.byStatus(models.FetchStatusStale)) == 1
	}, 2*time.Second, 5*time.Millisecond)

	snap = v.Snapshot()
	assert.Equal(t, StatusLoaded, snap.Status)
	assert.Equal(t, fresh, snap.Movies)
}

func TestView_DeactivateReleasesState(t *testing.T) {
	release := make(chan struct{})
	rec := &memRecorder{}
	v := NewView(fetcherFunc(func(ctx context.Context) ([]models.MovieSummary, error) {
		select {
		case <-release:
			return someMovies(), nil
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", services.ErrNetwork, ctx.Err())
		}
	}), rec, testLogger())

	v.Activate(context.Background())
	v.Deactivate()

	snap := v.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Empty(t, snap.Movies)

	// the cancelled fetch resolves as stale and never mutates the view
	require.Eventually(t, func() bool {
		return len(rec.byStatus(models.FetchStatusStale)) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, StatusIdle, v.Snapshot().Status)
}

func TestView_SnapshotIsACopy(t *testing.T) {
	v := NewView(fetcherFunc(func(ctx context.Context) ([]models.MovieSummary, error) {
		return someMovies(), nil
	}), nil, testLogger())

	v.Activate(context.Background())
	waitForStatus(t, v, StatusLoaded)

	first := v.Snapshot()
	first.Movies[0].Title = "mutated"

	second := v.Snapshot()
	assert.Equal(t, "Alpha", second.Movies[0].Title)

	// re-reading unchanged state yields an identical sequence
	assert.Equal(t, second, v.Snapshot())
}
