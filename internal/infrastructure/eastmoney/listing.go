package eastmoney

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	market "stockscreener/internal/domain/entity/market"
)

// Listing retrieves the full market snapshot. Page 1 is fetched
// synchronously to learn the total item count; the remaining pages run
// concurrently with at most maxConcurrency in flight. Rows come back in
// ascending page order regardless of completion order: each goroutine writes
// into its own page slot and the slots are concatenated afterwards. A failed
// page fails the whole call.
func (c *Client) Listing(ctx context.Context, pageSize, maxConcurrency int) ([]market.ListingRow, error) {
	if pageSize <= 0 {
		pageSize = 1000
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	first, total, err := c.listingPage(ctx, 1, pageSize)
	if err != nil {
		return nil, fmt.Errorf("listing page 1: %w", err)
	}
	if total <= 0 {
		total = len(first)
	}
	pages := (total + pageSize - 1) / pageSize
	c.log.WithFields(logrus.Fields{"total": total, "pages": pages, "page_size": pageSize}).
		Debug("eastmoney listing")
	if pages <= 1 {
		return first, nil
	}

	rest := make([][]market.ListingRow, pages-1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)
	for pn := 2; pn <= pages; pn++ {
		pn := pn
		g.Go(func() error {
			rows, _, err := c.listingPage(gctx, pn, pageSize)
			if err != nil {
				return fmt.Errorf("listing page %d: %w", pn, err)
			}
			rest[pn-2] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := first
	for _, rows := range rest {
		out = append(out, rows...)
	}
	return out, nil
}

func (c *Client) listingPage(ctx context.Context, page, pageSize int) ([]market.ListingRow, int, error) {
	params := url.Values{}
	params.Set("pn", strconv.Itoa(page))
	params.Set("pz", strconv.Itoa(pageSize))
	params.Set("po", "1")
	params.Set("np", "1")
	params.Set("ut", c.cfg.Token)
	params.Set("fltt", "2")
	params.Set("invt", "2")
	params.Set("fid", sortField)
	params.Set("fs", c.cfg.SegmentFilter)
	params.Set("fields", listFields)

	body, err := c.get(ctx, c.cfg.ListURL, params)
	if err != nil {
		return nil, 0, err
	}

	data := gjson.GetBytes(body, "data")
	if !data.Exists() || !data.IsObject() {
		return nil, 0, fmt.Errorf("%w: missing data envelope", ErrMalformed)
	}
	// data.diff is usually an array but sometimes comes back as an object
	// keyed "0","1",...; ForEach walks both.
	rows := make([]market.ListingRow, 0, pageSize)
	data.Get("diff").ForEach(func(_, item gjson.Result) bool {
		code := item.Get("f12").String()
		if code == "" {
			return true
		}
		rows = append(rows, market.ListingRow{
			Code:         code,
			Name:         item.Get("f14").String(),
			Price:        item.Get("f15").Float(),
			PctChange:    item.Get("f3").String(),
			VolumeRatio:  item.Get("f10").String(),
			TurnoverRate: item.Get("f8").String(),
		})
		return true
	})
	return rows, int(data.Get("total").Int()), nil
}
