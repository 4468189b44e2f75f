// Package editrequest is the in-memory lifecycle store for edit requests.
//
// Every operation runs as a single critical section under one mutex, so the
// check-then-set in Finalize can never interleave with another submission.
package editrequest

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/review-relay/internal/domain"
)

// idBytes is the number of random bytes in a request id (16 hex characters).
const idBytes = 8

// Store owns all live edit requests.
type Store struct {
	mu       sync.Mutex
	requests map[string]*domain.EditRequest
	// inflight holds ids whose delivery is claimed but not yet settled.
	inflight map[string]struct{}

	clock clockwork.Clock
	ttl   time.Duration
	newID func() string
	log   *slog.Logger
}

// New creates a Store whose entries expire ttl after creation.
func New(clock clockwork.Clock, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		requests: make(map[string]*domain.EditRequest),
		inflight: make(map[string]struct{}),
		clock:    clock,
		ttl:      ttl,
		newID:    randomID,
		log:      logger.With("adapter", "editrequest"),
	}
}

func randomID() string {
	b := make([]byte, idBytes)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// TTL returns the configured time-to-live.
func (s *Store) TTL() time.Duration { return s.ttl }

// Create inserts a new pending request and returns a copy of it.
func (s *Store) Create(_ context.Context, contactEmail, subject, body string) (*domain.EditRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for s.requests[id] != nil {
		id = s.newID()
	}

	req := &domain.EditRequest{
		ID:           id,
		ContactEmail: contactEmail,
		Subject:      subject,
		Body:         body,
		CreatedAt:    s.clock.Now(),
	}
	s.requests[id] = req

	return req.Clone(), nil
}

// Get returns a copy of the request.
// Returns domain.ErrNotFound for unknown ids and domain.ErrExpired for
// entries past their TTL that the sweeper has not removed yet.
func (s *Store) Get(_ context.Context, id string) (*domain.EditRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return req.Clone(), nil
}

// Finalize performs the one-time pending to submitted transition.
//
// The first call for an id stores subject, body and action and reports
// first=true. Later calls leave the record exactly as the first submission
// wrote it and report first=false. The returned request reflects the stored
// state in both cases.
func (s *Store) Finalize(_ context.Context, id, subject, body string, action domain.Action) (*domain.EditRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.lookup(id)
	if err != nil {
		return nil, false, err
	}
	if req.Submitted {
		return req.Clone(), false, nil
	}

	now := s.clock.Now()
	req.Subject = subject
	req.Body = body
	req.Action = action
	req.Submitted = true
	req.SubmittedAt = &now

	return req.Clone(), true, nil
}

// ClaimDelivery reserves the right to deliver a submitted decision.
//
// It reports claimed=true only for a submitted, undelivered entry that no
// other caller is currently delivering. The claimant must call SettleDelivery
// once the attempt is over. The returned request is the stored record.
func (s *Store) ClaimDelivery(_ context.Context, id string) (*domain.EditRequest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.lookup(id)
	if err != nil {
		return nil, false, err
	}
	if _, busy := s.inflight[id]; busy || !req.Submitted || req.Delivered {
		return req.Clone(), false, nil
	}
	s.inflight[id] = struct{}{}
	return req.Clone(), true, nil
}

// SettleDelivery releases a claim and records whether the decision reached
// the workflow. An undelivered entry can be claimed again. Settling an entry
// that was swept meanwhile is a no-op.
func (s *Store) SettleDelivery(_ context.Context, id string, delivered bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, id)
	if req, ok := s.requests[id]; ok && delivered {
		req.Delivered = true
	}
}

// lookup must be called with mu held.
func (s *Store) lookup(id string) (*domain.EditRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if req.IsExpired(s.clock.Now(), s.ttl) {
		return nil, domain.ErrExpired
	}
	return req, nil
}

// Sweep removes every entry older than the TTL, submitted or not.
// Returns the number of removed entries.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, req := range s.requests {
		if req.IsExpired(now, s.ttl) {
			delete(s.requests, id)
			delete(s.inflight, id)
			removed++
		}
	}
	return removed
}

// Stats returns the number of pending and submitted entries currently held.
func (s *Store) Stats() (pending, submitted int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.requests {
		if req.Submitted {
			submitted++
		} else {
			pending++
		}
	}
	return pending, submitted
}

// Run sweeps expired entries every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if n := s.Sweep(); n > 0 {
				s.log.InfoContext(ctx, "expired edit requests swept", slog.Int("removed", n))
			}
		}
	}
}
