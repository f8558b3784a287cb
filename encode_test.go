package exchange

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestJournalRoundTrip(t *testing.T) {
	ex := newTestExchange(t)
	t0 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if _, err := ex.Record("ALE", t0.Add(-2*time.Minute), Q(100), Buy, M(70, "GBP")); err != nil {
		t.Fatal(err)
	}
	if _, err := ex.Record("ALE", t0.Add(-time.Minute), Q(50), Sell, M(72, "GBP")); err != nil {
		t.Fatal(err)
	}
	if _, err := ex.Record("GIN", t0, Q(200), Buy, M(105.5, "GBP")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, ex); err != nil {
		t.Fatalf("EncodeJournal: %v", err)
	}

	decoded, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal: %v", err)
	}

	if decoded.Registry.Len() != ex.Registry.Len() {
		t.Errorf("decoded %d securities, want %d", decoded.Registry.Len(), ex.Registry.Len())
	}
	for sec := range ex.Registry.Securities() {
		got, err := decoded.Registry.Get(sec.Symbol())
		if err != nil {
			t.Fatalf("decoded registry misses %s: %v", sec.Symbol(), err)
		}
		if got.Type() != sec.Type() || !got.DividendPerShare().Equal(sec.DividendPerShare()) || !got.ParValue().Equal(sec.ParValue()) {
			t.Errorf("decoded %s = %v, want %v", sec.Symbol(), got, sec)
		}
	}

	want := slices.Collect(ex.Ledger.All())
	got := slices.Collect(decoded.Ledger.All())
	if len(got) != len(want) {
		t.Fatalf("decoded %d trades, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("decoded trade %d = %v, want %v", i, got[i], want[i])
		}
	}

	// the decoded exchange computes the same metrics
	a, err := ex.VWSP("ALE", t0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := decoded.VWSP("ALE", t0)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("VWSP after round trip = %s, want %s", b, a)
	}
}

func TestEncodeTradeLine(t *testing.T) {
	t0 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	trade, err := NewTrade("ALE", t0, Q(100), Buy, M(70, "GBP"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeTrade(&buf, trade); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{"command":"buy","symbol":"ALE","timestamp":"2026-08-30T10:00:00Z","quantity":100,"price":70,"currency":"GBP"}`
	if got != want {
		t.Errorf("EncodeTrade line:\n got %s\nwant %s", got, want)
	}
}

func TestDecodeJournalRejects(t *testing.T) {
	declare := `{"command":"declare","symbol":"ALE","type":"common","lastDividend":23,"parValue":60,"currency":"GBP"}`

	testCases := []struct {
		name    string
		journal string
		wantErr error
	}{
		{
			name:    "common with fixed dividend",
			journal: `{"command":"declare","symbol":"TEA","type":"common","lastDividend":0,"fixedDividend":2,"parValue":100,"currency":"GBP"}`,
			wantErr: ErrValidation,
		},
		{
			name:    "preferred without fixed dividend",
			journal: `{"command":"declare","symbol":"GIN","type":"preferred","lastDividend":8,"parValue":100,"currency":"GBP"}`,
			wantErr: ErrValidation,
		},
		{
			name:    "unknown security type",
			journal: `{"command":"declare","symbol":"GIN","type":"convertible","lastDividend":8,"parValue":100,"currency":"GBP"}`,
			wantErr: ErrValidation,
		},
		{
			name:    "trade on undeclared symbol",
			journal: `{"command":"buy","symbol":"POP","timestamp":"2026-08-30T10:00:00Z","quantity":100,"price":70,"currency":"GBP"}`,
			wantErr: ErrNotFound,
		},
		{
			name:    "zero quantity trade",
			journal: declare + "\n" + `{"command":"sell","symbol":"ALE","timestamp":"2026-08-30T10:00:00Z","quantity":0,"price":70,"currency":"GBP"}`,
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad timestamp",
			journal: declare + "\n" + `{"command":"sell","symbol":"ALE","timestamp":"yesterday","quantity":10,"price":70,"currency":"GBP"}`,
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeJournal(strings.NewReader(tc.journal))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("DecodeJournal error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDecodeJournalSkipsEmptyLines(t *testing.T) {
	journal := `{"command":"declare","symbol":"ALE","type":"common","lastDividend":23,"parValue":60,"currency":"GBP"}

{"command":"buy","symbol":"ALE","timestamp":"2026-08-30T10:00:00Z","quantity":100,"price":70,"currency":"GBP"}
`
	ex, err := DecodeJournal(strings.NewReader(journal))
	if err != nil {
		t.Fatalf("DecodeJournal: %v", err)
	}
	if ex.Ledger.Len() != 1 {
		t.Errorf("decoded %d trades, want 1", ex.Ledger.Len())
	}
}
