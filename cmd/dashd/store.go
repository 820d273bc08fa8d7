package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/budgetview/budgetview-go/pkg/budgetview"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Store holds the last successfully fetched state of both backend documents.
// The two documents populate disjoint slots, so the only coordination needed
// is last-fetch-wins per slot: a failed fetch leaves its slot untouched and
// the dashboard keeps rendering whatever arrived before.
type Store struct {
	client *budgetview.Client
	logger *slog.Logger

	mu           sync.RWMutex
	reports      []*budgetview.Report
	transactions map[string]*budgetview.Transaction
	refreshedAt  time.Time
}

// NewStore creates a store with empty state
func NewStore(client *budgetview.Client, logger *slog.Logger) *Store {
	return &Store{
		client:       client,
		logger:       logger,
		transactions: map[string]*budgetview.Transaction{},
	}
}

// Refresh fetches both documents concurrently. Each document replaces its
// slot only on its own success; the returned error reports the first failure
// but never cancels the other fetch or rolls its slot back.
func (s *Store) Refresh(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		reports, err := s.client.Reports.List(ctx)
		if err != nil {
			s.logger.Error("reports fetch failed", "error", err)
			return err
		}
		s.mu.Lock()
		s.reports = reports
		s.refreshedAt = time.Now()
		s.mu.Unlock()
		s.logger.Info("reports refreshed", "count", len(reports))
		return nil
	})

	g.Go(func() error {
		transactions, err := s.client.Transactions.Map(ctx)
		if err != nil {
			s.logger.Error("transactions fetch failed", "error", err)
			return err
		}
		s.mu.Lock()
		s.transactions = transactions
		s.refreshedAt = time.Now()
		s.mu.Unlock()
		s.logger.Info("transactions refreshed", "count", len(transactions))
		return nil
	})

	return g.Wait()
}

// Reports returns the current report list
func (s *Store) Reports() []*budgetview.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports
}

// Report returns the report with the given key, or nil
func (s *Store) Report(key string) *budgetview.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.Key == key {
			return r
		}
	}
	return nil
}

// Transaction looks up a transaction by id, synthesizing a placeholder when
// the id is absent from the fetched mapping.
func (s *Store) Transaction(id string) *budgetview.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client.Transactions.Lookup(s.transactions, id)
}

// RefreshedAt reports when a document last landed
func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

// responseCache is an optional Redis-backed cache for rendered view bodies.
// A nil receiver or nil client disables it.
type responseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func newResponseCache(addr string, ttl time.Duration) *responseCache {
	if addr == "" {
		return nil
	}
	return &responseCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (c *responseCache) get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *responseCache) set(ctx context.Context, key string, body []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	// Cache failures are invisible to the user; the view is recomputed
	_ = c.rdb.Set(ctx, key, body, c.ttl).Err()
}

func (c *responseCache) invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
