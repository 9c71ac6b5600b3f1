package market

import (
	"encoding/json"
	"math"
)

// Pct is a decimal-percent metric (2.0 means 2%). NaN marks a value the
// provider sent in an unparsable form; it marshals as null.
type Pct float64

func (p Pct) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(p)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

// IsNaN reports whether the metric carries no usable value.
func (p Pct) IsNaN() bool {
	return math.IsNaN(float64(p))
}

// ListingRow is one row of the full-market snapshot exactly as the provider
// returned it. Percent-like fields keep the provider encoding (possibly
// pre-scaled by 100, possibly suffixed with %) until NormalizePercent runs.
type ListingRow struct {
	Code         string
	Name         string
	Price        float64
	PctChange    string
	VolumeRatio  string
	TurnoverRate string
}

// Normalize converts the raw row into a Quote with canonical decimal-percent
// metrics. Unparsable fields become NaN.
func (r ListingRow) Normalize() Quote {
	return Quote{
		Code:         r.Code,
		Name:         r.Name,
		Price:        r.Price,
		PctChange:    NormalizePercent(r.PctChange),
		VolumeRatio:  NormalizePercent(r.VolumeRatio),
		TurnoverRate: NormalizePercent(r.TurnoverRate),
	}
}

// Quote is a normalized listing row. It only lives between normalization and
// the first filter stage.
type Quote struct {
	Code         string
	Name         string
	Price        float64
	PctChange    float64
	VolumeRatio  float64
	TurnoverRate float64
}

// DetailRow is one row of the per-symbol endpoint as the provider returned
// it, percent-like fields still raw.
type DetailRow struct {
	Code         string
	Name         string
	Price        float64
	PctChange    string
	VolumeRatio  string
	TurnoverRate string
	Imbalance    string
	NetInflow    float64
}

// Normalize converts the raw detail row into a Detail with canonical
// decimal-percent metrics.
func (r DetailRow) Normalize() Detail {
	return Detail{
		Code:         r.Code,
		Name:         r.Name,
		Price:        r.Price,
		PctChange:    Pct(NormalizePercent(r.PctChange)),
		VolumeRatio:  Pct(NormalizePercent(r.VolumeRatio)),
		TurnoverRate: Pct(NormalizePercent(r.TurnoverRate)),
		Imbalance:    Pct(NormalizePercent(r.Imbalance)),
		NetInflow:    r.NetInflow,
	}
}

// Detail is the enriched per-symbol record returned to callers.
type Detail struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PctChange    Pct     `json:"pct_change"`
	VolumeRatio  Pct     `json:"volume_ratio"`
	TurnoverRate Pct     `json:"turnover_rate"`
	Imbalance    Pct     `json:"imbalance"`
	NetInflow    float64 `json:"net_inflow"`
}

// ScreenResult is the ordered outcome of a full screen run.
type ScreenResult struct {
	Count int      `json:"count"`
	Items []Detail `json:"items"`
}
