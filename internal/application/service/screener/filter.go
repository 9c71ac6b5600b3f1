package screener

import (
	"math"

	market "stockscreener/internal/domain/entity/market"
)

// Thresholds are the numeric predicates of the two filter stages, in decimal
// percent. Percent-change bounds are strict on both sides; the minimums are
// strict lower bounds.
type Thresholds struct {
	PctMin      float64
	PctMax      float64
	VolRatioMin float64
	TurnoverMin float64
	WbMin       float64
}

// DefaultThresholds mirrors the fixed variant of the screen: percent change
// strictly between 2 and 5, volume ratio above 5, turnover rate above 1,
// imbalance at least 20.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PctMin:      2,
		PctMax:      5,
		VolRatioMin: 5,
		TurnoverMin: 1,
		WbMin:       20,
	}
}

// passesStage1 applies the listing-level predicate. NaN metrics never
// satisfy a comparison, so a record with any unparsable field is excluded.
func passesStage1(q market.Quote, t Thresholds) bool {
	return q.PctChange > t.PctMin && q.PctChange < t.PctMax &&
		q.VolumeRatio > t.VolRatioMin &&
		q.TurnoverRate > t.TurnoverMin
}

// selectCandidates returns the identifiers of quotes passing stage 1,
// preserving listing order. Duplicates are kept as the provider sent them.
func selectCandidates(quotes []market.Quote, t Thresholds) []string {
	codes := make([]string, 0, len(quotes)/4)
	for _, q := range quotes {
		if passesStage1(q, t) {
			codes = append(codes, q.Code)
		}
	}
	return codes
}

// selectFinal applies the detail-level imbalance threshold. Absent slots
// (failed fetches) are dropped unconditionally; relative order is preserved.
func selectFinal(details []*market.Detail, wbMin float64) []market.Detail {
	out := make([]market.Detail, 0, len(details))
	for _, d := range details {
		if d == nil {
			continue
		}
		wb := float64(d.Imbalance)
		if math.IsNaN(wb) || wb < wbMin {
			continue
		}
		out = append(out, *d)
	}
	return out
}
