package screener

import (
	"math"
	"testing"

	market "stockscreener/internal/domain/entity/market"
)

func quote(code string, pct, vr, tr float64) market.Quote {
	return market.Quote{Code: code, PctChange: pct, VolumeRatio: vr, TurnoverRate: tr}
}

func TestPassesStage1StrictBounds(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		name string
		q    market.Quote
		want bool
	}{
		{"inside all bounds", quote("a", 3, 10, 2), true},
		{"pct at lower bound", quote("a", 2, 10, 2), false},
		{"pct at upper bound", quote("a", 5, 10, 2), false},
		{"pct just inside", quote("a", 2.01, 10, 2), true},
		{"volume ratio at bound", quote("a", 3, 5, 2), false},
		{"turnover at bound", quote("a", 3, 10, 1), false},
		{"pct NaN", quote("a", math.NaN(), 10, 2), false},
		{"volume ratio NaN", quote("a", 3, math.NaN(), 2), false},
		{"turnover NaN", quote("a", 3, 10, math.NaN()), false},
	}
	for _, tc := range cases {
		if got := passesStage1(tc.q, th); got != tc.want {
			t.Errorf("%s: passesStage1 = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSelectCandidatesPreservesOrder(t *testing.T) {
	quotes := []market.Quote{
		quote("000001", 3, 10, 2),
		quote("000002", 6, 10, 2),
		quote("000003", 4, 10, 2),
		quote("000001", 3.5, 10, 2), // duplicates are not collapsed
	}
	got := selectCandidates(quotes, DefaultThresholds())
	want := []string{"000001", "000003", "000001"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSelectFinal(t *testing.T) {
	d := func(code string, wb float64) *market.Detail {
		return &market.Detail{Code: code, Imbalance: market.Pct(wb)}
	}
	details := []*market.Detail{
		d("a", 25),
		nil, // failed fetch
		d("b", 19.99),
		d("c", 20),
		d("d", math.NaN()),
		d("e", 90),
	}
	got := selectFinal(details, 20)
	want := []string{"a", "c", "e"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Code != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, got[i].Code, want[i])
		}
	}
}
