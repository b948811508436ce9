// Package youtube normalizes Innertube responses into stable flat shapes.
//
// Every operation follows the same arc: validate input, acquire the shared
// client, call upstream, extract a small set of guaranteed fields from the
// tolerant payload, and wrap any failure with a stable operation prefix.
// Upstream payloads are schema-unstable, so field extraction always runs
// through ordered fallback chains ending in a type-appropriate default —
// a missing or renamed field never fails the call.
package youtube

import (
	"context"

	"golang.org/x/sync/singleflight"
)

const (
	defaultLanguage      = "en"
	defaultRegion        = "US"
	defaultSearchResults = 20
	defaultListResults   = 50
)

// Service exposes the read-only normalized operations. It lazily constructs
// one underlying client on first use and reuses it for the process lifetime.
type Service struct {
	factory ClientFactory

	initGroup singleflight.Group
	ready     chan struct{} // closed once client is set
	client    Client
}

// NewService returns a service that builds its client from factory on the
// first call that needs one.
func NewService(factory ClientFactory) *Service {
	return &Service{
		factory: factory,
		ready:   make(chan struct{}),
	}
}

// ensureReady returns the shared client, constructing it on first use.
// Concurrent first callers share a single in-flight construction: all of
// them observe the same client or the same InitializationError. A failure
// is not memoized, so the next call attempts construction again.
func (s *Service) ensureReady(ctx context.Context) (Client, error) {
	select {
	case <-s.ready:
		return s.client, nil
	default:
	}

	v, err, _ := s.initGroup.Do("init", func() (any, error) {
		// Re-check: a previous Do call may have finished between the
		// fast path above and joining the group.
		select {
		case <-s.ready:
			return s.client, nil
		default:
		}
		c, err := s.factory(ctx)
		if err != nil {
			return nil, err
		}
		s.client = c
		close(s.ready)
		return c, nil
	})
	if err != nil {
		incrInitFailures()
		return nil, &InitializationError{Err: err}
	}
	return v.(Client), nil
}
