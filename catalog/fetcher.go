package catalog

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/ray-remotestate/storefront/models"
)

// ErrUpstreamFailure is an injected remote failure, keyed by a literal
// "error" substring in the requested path.
var ErrUpstreamFailure = errors.New("upstream request failed")

// Snapshot is one full catalog payload from the upstream backend.
type Snapshot struct {
	Branches []models.Branch
	Products []models.Product
}

// Upstream fetches catalog snapshots from a remote backend.
type Upstream interface {
	FetchSnapshot(ctx context.Context, path string) (*Snapshot, error)
}

const (
	minFetchDelay = 500 * time.Millisecond
	maxFetchDelay = 1500 * time.Millisecond
)

// SimulatedUpstream stands in for a real backend: it serves a fixed snapshot
// after an artificial delay and fails when the path contains "error".
type SimulatedUpstream struct {
	snapshot *Snapshot

	// delay bounds, overridable in tests
	MinDelay time.Duration
	MaxDelay time.Duration
}

func NewSimulatedUpstream(snapshot *Snapshot) *SimulatedUpstream {
	return &SimulatedUpstream{
		snapshot: snapshot,
		MinDelay: minFetchDelay,
		MaxDelay: maxFetchDelay,
	}
}

func (u *SimulatedUpstream) FetchSnapshot(ctx context.Context, path string) (*Snapshot, error) {
	delay := u.MinDelay
	if u.MaxDelay > u.MinDelay {
		delay += time.Duration(rand.Int63n(int64(u.MaxDelay - u.MinDelay)))
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if strings.Contains(path, "error") {
		return nil, ErrUpstreamFailure
	}
	return u.snapshot, nil
}

// Fetcher loads catalog snapshots into a Catalog. A circuit breaker guards
// the upstream and concurrent identical fetches are collapsed; failed
// fetches are not retried.
type Fetcher struct {
	upstream Upstream
	catalog  *Catalog
	breaker  *gobreaker.CircuitBreaker[*Snapshot]
	sfg      singleflight.Group
}

func NewFetcher(upstream Upstream, catalog *Catalog) *Fetcher {
	breaker := gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
		Name:    "catalog-upstream",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.Warnf("catalog: breaker %s moved from %s to %s", name, from, to)
		},
	})

	return &Fetcher{
		upstream: upstream,
		catalog:  catalog,
		breaker:  breaker,
	}
}

// Refresh fetches the snapshot at path and loads it into the catalog.
func (f *Fetcher) Refresh(ctx context.Context, path string) error {
	v, err, _ := f.sfg.Do(path, func() (interface{}, error) {
		return f.breaker.Execute(func() (*Snapshot, error) {
			return f.upstream.FetchSnapshot(ctx, path)
		})
	})
	if err != nil {
		logrus.WithError(err).Errorf("catalog: refresh %s failed", path)
		return err
	}

	snapshot := v.(*Snapshot)
	f.catalog.Load(snapshot.Branches, snapshot.Products)
	return nil
}
