// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

type cacheKey struct {
	path string
	rate int
}

// Cache is a Loader that remembers the most recently decoded signals.
// It is safe for concurrent use.
type Cache struct {
	next   Loader
	lru    *lru.Cache[cacheKey, []float32]
	logger *slog.Logger
}

// NewCache wraps next with an LRU holding up to size signals.
func NewCache(next Loader, size int) (*Cache, error) {
	l, err := lru.New[cacheKey, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("loader cache: %w", err)
	}
	return &Cache{next: next, lru: l, logger: slog.Default()}, nil
}

// SetLogger replaces the logger used for Warm progress.
func (c *Cache) SetLogger(l *slog.Logger) { c.logger = l }

// Load returns a copy of the cached signal, decoding it through the wrapped
// Loader on a miss. Errors are not cached.
func (c *Cache) Load(path string, sampleRate int) ([]float32, error) {
	key := cacheKey{path: path, rate: sampleRate}
	if samples, ok := c.lru.Get(key); ok {
		return slices.Clone(samples), nil
	}

	samples, err := c.next.Load(path, sampleRate)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, samples)
	return slices.Clone(samples), nil
}

// Len reports the number of cached signals.
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops every cached signal.
func (c *Cache) Purge() { c.lru.Purge() }

// Warm decodes paths at sampleRate with up to workers goroutines. The first
// failure cancels the remaining loads and is returned.
func (c *Cache) Warm(ctx context.Context, paths []string, sampleRate, workers int) error {
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := c.Load(path, sampleRate); err != nil {
				return fmt.Errorf("warm: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	c.logger.Debug("noise cache warmed", "files", len(paths), "sample_rate", sampleRate, "cached", c.lru.Len())
	return nil
}
