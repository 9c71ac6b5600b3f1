package interfaces

import (
	"context"
	"encoding/json"

	market "stockscreener/internal/domain/entity/market"
)

// MarketData is the upstream quote provider consumed by the screen pipeline.
type MarketData interface {
	// Listing retrieves the full market snapshot. The first page failing is
	// fatal; later pages are fetched concurrently under maxConcurrency and
	// any failure fails the whole call.
	Listing(ctx context.Context, pageSize, maxConcurrency int) ([]market.ListingRow, error)

	// Detail fetches the enriched record for one symbol.
	Detail(ctx context.Context, code string) (market.DetailRow, error)

	// DetailRaw returns the provider's data object for one symbol untouched.
	DetailRaw(ctx context.Context, code string) (json.RawMessage, error)
}

// SecondaryQuote is the alternate single-symbol lookup source. The service
// runs without one; the stock endpoint rejects source=ak when none is wired.
type SecondaryQuote interface {
	Quote(ctx context.Context, code string) (map[string]any, error)
}
