package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	market "stockscreener/internal/domain/entity/market"
)

// SecID maps a symbol to Eastmoney addressing: Shanghai codes (leading 6)
// live on market 1, everything else on market 0.
func SecID(code string) string {
	code = strings.TrimSpace(code)
	if strings.HasPrefix(code, "6") {
		return "1." + code
	}
	return "0." + code
}

func (c *Client) detailParams(code string) url.Values {
	params := url.Values{}
	params.Set("secid", SecID(code))
	params.Set("fields", detailFields)
	params.Set("fltt", "2")
	params.Set("invt", "2")
	params.Set("ut", c.cfg.Token)
	return params
}

// Detail fetches the enriched record for one symbol.
func (c *Client) Detail(ctx context.Context, code string) (market.DetailRow, error) {
	data, err := c.detailData(ctx, code)
	if err != nil {
		return market.DetailRow{}, err
	}
	return market.DetailRow{
		Code:         data.Get("f57").String(),
		Name:         data.Get("f58").String(),
		Price:        data.Get("f43").Float(),
		PctChange:    data.Get("f170").String(),
		VolumeRatio:  data.Get("f50").String(),
		TurnoverRate: data.Get("f168").String(),
		Imbalance:    data.Get("f191").String(),
		NetInflow:    data.Get("f137").Float(),
	}, nil
}

// DetailRaw returns the provider's data object untouched, for the raw_only
// passthrough lookup.
func (c *Client) DetailRaw(ctx context.Context, code string) (json.RawMessage, error) {
	data, err := c.detailData(ctx, code)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data.Raw), nil
}

func (c *Client) detailData(ctx context.Context, code string) (gjson.Result, error) {
	body, err := c.get(ctx, c.cfg.DetailURL, c.detailParams(code))
	if err != nil {
		return gjson.Result{}, err
	}
	data := gjson.GetBytes(body, "data")
	if !data.Exists() || !data.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: missing data for %s", ErrMalformed, code)
	}
	return data, nil
}
