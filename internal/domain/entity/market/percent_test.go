package market

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestNormalizePercent(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"-624", -6.24},
		{"3.5%", 3.5},
		{"12", 12},
		{"250", 2.5},
		{"100", 100},
		{"-100", -100},
		{"-6.24", -6.24},
		{" 4.2 ", 4.2},
		{"0", 0},
	}
	for _, tc := range cases {
		if got := NormalizePercent(tc.raw); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizePercent(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizePercentInvalid(t *testing.T) {
	for _, raw := range []string{"", "-", "abc", "%", "12..5", "n/a"} {
		if got := NormalizePercent(raw); !math.IsNaN(got) {
			t.Errorf("NormalizePercent(%q) = %v, want NaN", raw, got)
		}
	}
}

func TestNormalizePercentIdempotent(t *testing.T) {
	for _, raw := range []string{"-6.24", "3.5", "99.99", "100", "0"} {
		once := NormalizePercent(raw)
		twice := NormalizePercent(formatFloat(once))
		if math.Abs(once-twice) > 1e-9 {
			t.Errorf("normalizing %q twice: %v then %v", raw, once, twice)
		}
	}
}

func formatFloat(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestListingRowNormalize(t *testing.T) {
	q := ListingRow{
		Code:         "600519",
		Name:         "test",
		Price:        12.5,
		PctChange:    "-624",
		VolumeRatio:  "5.5",
		TurnoverRate: "x",
	}.Normalize()
	if q.PctChange != -6.24 || q.VolumeRatio != 5.5 {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if !math.IsNaN(q.TurnoverRate) {
		t.Fatalf("turnover rate should be NaN, got %v", q.TurnoverRate)
	}
}

func TestPctMarshalsNaNAsNull(t *testing.T) {
	d := Detail{Code: "000001", Imbalance: Pct(math.NaN())}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"imbalance":null`) {
		t.Fatalf("want null imbalance, got %s", b)
	}
}
