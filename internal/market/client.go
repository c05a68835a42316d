package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrNoSources is returned when no marketplace sources are configured.
var ErrNoSources = errors.New("no marketplace sources configured")

type client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// New creates a market System that fans search requests out to every
// configured source concurrently and merges the results by similarity.
func New(cfg Config, logger *slog.Logger) System {
	return &client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.RequestTimeoutDuration(),
		},
		logger: logger.With("system", "market"),
	}
}

// SearchComparables queries every configured source for sold listings
// matching the query. Individual source failures are logged and skipped;
// the search only errors when no source is configured or every source
// fails. Results are ordered by descending similarity and capped at
// q.Limit.
func (c *client) SearchComparables(ctx context.Context, q Query) ([]ComparableSale, error) {
	if len(c.cfg.Sources) == 0 {
		return nil, ErrNoSources
	}

	var (
		mu       sync.Mutex
		combined []ComparableSale
		failures int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxConcurrent)

	for _, source := range c.cfg.Sources {
		g.Go(func() error {
			results, err := c.searchSource(gctx, source, q)
			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failures++
				c.logger.Warn("marketplace source failed",
					"source", source.Name,
					"error", err,
				)
				return nil
			}

			combined = append(combined, results...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if failures == len(c.cfg.Sources) {
		return nil, fmt.Errorf("all %d marketplace sources failed", failures)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Similarity > combined[j].Similarity
	})

	if q.Limit > 0 && len(combined) > q.Limit {
		combined = combined[:q.Limit]
	}

	return combined, nil
}

func (c *client) searchSource(ctx context.Context, source Source, q Query) ([]ComparableSale, error) {
	endpoint, err := url.Parse(source.BaseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}

	params := endpoint.Query()
	params.Set("q", q.Terms)
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.MinPrice > 0 {
		params.Set("min_price", strconv.FormatFloat(q.MinPrice, 'f', 2, 64))
	}
	if q.MaxPrice > 0 {
		params.Set("max_price", strconv.FormatFloat(q.MaxPrice, 'f', 2, 64))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", source.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", source.Name, resp.StatusCode)
	}

	var results []ComparableSale
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", source.Name, err)
	}

	for i := range results {
		if results[i].Marketplace == "" {
			results[i].Marketplace = source.Name
		}
	}

	return results, nil
}
