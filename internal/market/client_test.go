package market_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/curiolabs/curio/internal/market"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSource(t *testing.T, sales []market.ComparableSale) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(sales)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchComparables(t *testing.T) {
	t.Run("merges sources sorted by similarity", func(t *testing.T) {
		a := newSource(t, []market.ComparableSale{
			{Title: "vase one", SoldPrice: 200, Similarity: 0.6},
		})
		b := newSource(t, []market.ComparableSale{
			{Title: "vase two", SoldPrice: 300, Similarity: 0.9},
		})

		cfg := market.Config{Sources: []market.Source{
			{Name: "alpha", BaseURL: a.URL},
			{Name: "beta", BaseURL: b.URL},
		}}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize config: %v", err)
		}

		sys := market.New(cfg, discardLogger())
		results, err := sys.SearchComparables(context.Background(), market.Query{Terms: "vase", Limit: 10})
		if err != nil {
			t.Fatalf("SearchComparables error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("len = %d, want 2", len(results))
		}
		if results[0].Similarity < results[1].Similarity {
			t.Error("results not sorted by descending similarity")
		}
	})

	t.Run("limit caps combined results", func(t *testing.T) {
		sales := make([]market.ComparableSale, 8)
		for i := range sales {
			sales[i] = market.ComparableSale{Title: "item", SoldPrice: 100}
		}
		src := newSource(t, sales)

		cfg := market.Config{Sources: []market.Source{{Name: "solo", BaseURL: src.URL}}}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize config: %v", err)
		}

		sys := market.New(cfg, discardLogger())
		results, err := sys.SearchComparables(context.Background(), market.Query{Terms: "item", Limit: 5})
		if err != nil {
			t.Fatalf("SearchComparables error: %v", err)
		}
		if len(results) != 5 {
			t.Errorf("len = %d, want 5", len(results))
		}
	})

	t.Run("missing marketplace name filled from source", func(t *testing.T) {
		src := newSource(t, []market.ComparableSale{{Title: "x", SoldPrice: 50}})
		cfg := market.Config{Sources: []market.Source{{Name: "estatebid", BaseURL: src.URL}}}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize config: %v", err)
		}

		sys := market.New(cfg, discardLogger())
		results, err := sys.SearchComparables(context.Background(), market.Query{Terms: "x"})
		if err != nil {
			t.Fatalf("SearchComparables error: %v", err)
		}
		if results[0].Marketplace != "estatebid" {
			t.Errorf("Marketplace = %q, want estatebid", results[0].Marketplace)
		}
	})

	t.Run("partial source failure is tolerated", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(broken.Close)
		ok := newSource(t, []market.ComparableSale{{Title: "y", SoldPrice: 75}})

		cfg := market.Config{Sources: []market.Source{
			{Name: "broken", BaseURL: broken.URL},
			{Name: "healthy", BaseURL: ok.URL},
		}}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize config: %v", err)
		}

		sys := market.New(cfg, discardLogger())
		results, err := sys.SearchComparables(context.Background(), market.Query{Terms: "y"})
		if err != nil {
			t.Fatalf("SearchComparables error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("len = %d, want 1 from the healthy source", len(results))
		}
	})

	t.Run("all sources failing is an error", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(broken.Close)

		cfg := market.Config{Sources: []market.Source{{Name: "broken", BaseURL: broken.URL}}}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize config: %v", err)
		}

		sys := market.New(cfg, discardLogger())
		if _, err := sys.SearchComparables(context.Background(), market.Query{Terms: "z"}); err == nil {
			t.Error("expected error when every source fails")
		}
	})

	t.Run("no sources configured", func(t *testing.T) {
		cfg := market.Config{}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize config: %v", err)
		}
		sys := market.New(cfg, discardLogger())
		if _, err := sys.SearchComparables(context.Background(), market.Query{Terms: "q"}); !errors.Is(err, market.ErrNoSources) {
			t.Errorf("error = %v, want ErrNoSources", err)
		}
	})
}

func TestCalculatePriceRange(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		pr := market.CalculatePriceRange(nil)
		if pr.Count != 0 || pr.Min != 0 || pr.Max != 0 {
			t.Errorf("PriceRange = %+v, want zero value", pr)
		}
	})

	t.Run("min max count", func(t *testing.T) {
		pr := market.CalculatePriceRange([]market.ComparableSale{
			{SoldPrice: 250},
			{SoldPrice: 120},
			{SoldPrice: 480},
		})
		if pr.Min != 120 || pr.Max != 480 || pr.Count != 3 {
			t.Errorf("PriceRange = %+v, want {120 480 3}", pr)
		}
	})
}
