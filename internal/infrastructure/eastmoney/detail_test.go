package eastmoney

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecID(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"600519", "1.600519"},
		{"688981", "1.688981"},
		{"000001", "0.000001"},
		{"002415", "0.002415"},
		{"300750", "0.300750"},
		{" 600519 ", "1.600519"},
	}
	for _, tc := range cases {
		if got := SecID(tc.code); got != tc.want {
			t.Errorf("SecID(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("secid"); got != "1.600519" {
			t.Errorf("secid = %q, want 1.600519", got)
		}
		if got := q.Get("fields"); got != detailFields {
			t.Errorf("fields = %q, want %q", got, detailFields)
		}
		_, _ = w.Write([]byte(`{"data":{"f57":"600519","f58":"demo","f43":1700.5,"f170":-624,"f50":5.5,"f168":2.1,"f191":35,"f137":12345678}}`))
	}))
	defer srv.Close()

	row, err := newTestClient(srv).Detail(context.Background(), "600519")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if row.Code != "600519" || row.Name != "demo" {
		t.Fatalf("unexpected identity: %+v", row)
	}
	if row.Price != 1700.5 || row.NetInflow != 12345678 {
		t.Fatalf("unexpected numerics: %+v", row)
	}
	// Percent-like fields stay raw so normalization is a separate step.
	if row.PctChange != "-624" || row.Imbalance != "35" {
		t.Fatalf("percent fields should stay raw: %+v", row)
	}
}

func TestDetailMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Detail(context.Background(), "600519")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestDetailRawPassthrough(t *testing.T) {
	const payload = `{"f57":"000001","f43":11.2,"f999":"untouched"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":` + payload + `}`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).DetailRaw(context.Background(), "000001")
	if err != nil {
		t.Fatalf("DetailRaw: %v", err)
	}
	if string(raw) != payload {
		t.Fatalf("raw = %s, want %s", raw, payload)
	}
}

func TestDetailUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Detail(context.Background(), "000001")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}
