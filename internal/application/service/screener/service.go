// Package screener runs the two-stage market scan: full listing, listing
// filter, bounded per-symbol detail fan-out, detail filter.
package screener

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	market "stockscreener/internal/domain/entity/market"
	"stockscreener/internal/domain/interfaces"
)

const (
	defaultConcurrency = 8
	defaultPageSize    = 1000

	minConcurrency = 1
	maxConcurrency = 64
	minPageSize    = 100
	maxPageSize    = 5000
)

// Params configures one screen run. Limit 0 means unlimited; truncation
// happens before the detail fan-out, trading completeness for fewer calls.
type Params struct {
	Thresholds
	Concurrency int
	Limit       int
	PageSize    int
}

// DefaultParams returns the no-parameter variant of the screen.
func DefaultParams() Params {
	return Params{
		Thresholds:  DefaultThresholds(),
		Concurrency: defaultConcurrency,
		PageSize:    defaultPageSize,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p Params) normalized() Params {
	if p.Concurrency == 0 {
		p.Concurrency = defaultConcurrency
	}
	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}
	p.Concurrency = clamp(p.Concurrency, minConcurrency, maxConcurrency)
	p.PageSize = clamp(p.PageSize, minPageSize, maxPageSize)
	if p.Limit < 0 {
		p.Limit = 0
	}
	return p
}

type Service struct {
	source interfaces.MarketData
	log    *logrus.Logger
}

func NewService(source interfaces.MarketData, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{source: source, log: log}
}

// Screen runs the full pipeline. It fails only when the mandatory first
// listing page fails; every later per-item failure degrades to omission.
func (s *Service) Screen(ctx context.Context, p Params) (market.ScreenResult, error) {
	p = p.normalized()

	rows, err := s.source.Listing(ctx, p.PageSize, p.Concurrency)
	if err != nil {
		return market.ScreenResult{}, fmt.Errorf("fetch listing: %w", err)
	}

	quotes := make([]market.Quote, len(rows))
	for i, r := range rows {
		quotes[i] = r.Normalize()
	}
	codes := selectCandidates(quotes, p.Thresholds)
	s.log.WithFields(logrus.Fields{"listed": len(rows), "candidates": len(codes)}).
		Debug("stage 1 selection")

	if p.Limit > 0 && len(codes) > p.Limit {
		codes = codes[:p.Limit]
	}

	details := s.fetchDetails(ctx, codes, p.Concurrency)
	items := selectFinal(details, p.WbMin)
	return market.ScreenResult{Count: len(items), Items: items}, nil
}

// fetchDetails fans out one detail request per identifier. A counting
// semaphore bounds in-flight requests; every goroutine writes its result
// into its own index so the output is aligned with the input regardless of
// completion order. Failed fetches leave a nil slot. No retry, and a slow
// request never aborts its siblings.
func (s *Service) fetchDetails(ctx context.Context, codes []string, concurrency int) []*market.Detail {
	out := make([]*market.Detail, len(codes))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, code := range codes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			row, err := s.source.Detail(ctx, code)
			if err != nil {
				s.log.WithError(err).WithField("code", code).Debug("detail fetch dropped")
				return
			}
			d := row.Normalize()
			out[i] = &d
		}(i, code)
	}
	wg.Wait()
	return out
}

// Lookup returns the normalized detail record for one symbol.
func (s *Service) Lookup(ctx context.Context, code string) (market.Detail, error) {
	row, err := s.source.Detail(ctx, code)
	if err != nil {
		return market.Detail{}, fmt.Errorf("fetch detail %s: %w", code, err)
	}
	return row.Normalize(), nil
}

// LookupRaw returns the provider's data object for one symbol untouched.
func (s *Service) LookupRaw(ctx context.Context, code string) (json.RawMessage, error) {
	raw, err := s.source.DetailRaw(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("fetch detail %s: %w", code, err)
	}
	return raw, nil
}
