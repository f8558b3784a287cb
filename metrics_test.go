package exchange

import (
	"errors"
	"testing"
	"time"
)

func TestDividendYield(t *testing.T) {
	ex := newTestExchange(t)

	testCases := []struct {
		name   string
		symbol string
		price  Money
		want   Quantity
	}{
		// common: lastDividend / price, for any positive price
		{"POP at 110", "POP", M(110, "GBP"), Q(8).Div(Q(110))},
		{"POP at 8", "POP", M(8, "GBP"), Q(1)},
		{"ALE at 60", "ALE", M(60, "GBP"), Q(23).Div(Q(60))},
		// zero dividend yields zero, a valid ratio
		{"TEA at 100", "TEA", M(100, "GBP"), Q(0)},
		// preferred: fixed% * par / price
		{"GIN at 110", "GIN", M(110, "GBP"), Q(2).Div(Q(110))},
		{"GIN at 2", "GIN", M(2, "GBP"), Q(1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ex.DividendYield(tc.symbol, tc.price)
			if err != nil {
				t.Fatalf("DividendYield(%s, %s): %v", tc.symbol, tc.price, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("DividendYield(%s, %s) = %s, want %s", tc.symbol, tc.price, got, tc.want)
			}
		})
	}
}

func TestDividendYieldErrors(t *testing.T) {
	ex := newTestExchange(t)

	if _, err := ex.DividendYield("VODKA", M(10, "GBP")); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown symbol: error = %v, want ErrNotFound", err)
	}
	if _, err := ex.DividendYield("POP", M(0, "GBP")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero price: error = %v, want ErrInvalidInput", err)
	}
	if _, err := ex.DividendYield("POP", M(-10, "GBP")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative price: error = %v, want ErrInvalidInput", err)
	}
}

func TestPERatio(t *testing.T) {
	ex := newTestExchange(t)

	got, err := ex.PERatio("POP", M(110, "GBP"))
	if err != nil {
		t.Fatalf("PERatio(POP, 110): %v", err)
	}
	if want := Q(110).Div(Q(8)); !got.Equal(want) {
		t.Errorf("PERatio(POP, 110) = %s, want %s", got, want)
	}

	// preferred uses the fixed dividend on par: 2% of 100 = 2
	got, err = ex.PERatio("GIN", M(110, "GBP"))
	if err != nil {
		t.Fatalf("PERatio(GIN, 110): %v", err)
	}
	if want := Q(55); !got.Equal(want) {
		t.Errorf("PERatio(GIN, 110) = %s, want %s", got, want)
	}
}

func TestPERatioUndefinedOnZeroDividend(t *testing.T) {
	ex := newTestExchange(t)

	// TEA pays no dividend: the ratio is undefined for every valid price,
	// never a silent division nor a zero.
	for _, price := range []Money{M(1, "GBP"), M(98, "GBP"), M(10000, "GBP")} {
		if _, err := ex.PERatio("TEA", price); !errors.Is(err, ErrUndefined) {
			t.Errorf("PERatio(TEA, %s) error = %v, want ErrUndefined", price, err)
		}
	}
}

func TestVWSP(t *testing.T) {
	ex := newTestExchange(t)
	asOf := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// 100 @ 70 and 50 @ 72 in the window: (7000 + 3600) / 150
	if _, err := ex.Record("ALE", asOf.Add(-2*time.Minute), Q(100), Buy, M(70, "GBP")); err != nil {
		t.Fatal(err)
	}
	if _, err := ex.Record("ALE", asOf.Add(-time.Minute), Q(50), Sell, M(72, "GBP")); err != nil {
		t.Fatal(err)
	}

	got, err := ex.VWSP("ALE", asOf)
	if err != nil {
		t.Fatalf("VWSP(ALE): %v", err)
	}
	want := M(10600, "GBP").Div(Q(150))
	if !got.Equal(want) {
		t.Errorf("VWSP(ALE) = %s, want %s", got, want)
	}
}

func TestVWSPWindowBoundary(t *testing.T) {
	asOf := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		timestamp time.Time
		inWindow  bool
	}{
		{"exactly 5 minutes old is excluded", asOf.Add(-5 * time.Minute), false},
		{"4 minutes 59 seconds old is included", asOf.Add(-5*time.Minute + time.Second), true},
		{"at the reference instant is included", asOf, true},
		{"future dated is not yet visible", asOf.Add(time.Second), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ex := newTestExchange(t)
			if _, err := ex.Record("JOE", tc.timestamp, Q(300), Sell, M(240, "GBP")); err != nil {
				t.Fatal(err)
			}

			got, err := ex.VWSP("JOE", asOf)
			if tc.inWindow {
				if err != nil {
					t.Fatalf("VWSP(JOE): %v", err)
				}
				if want := M(240, "GBP"); !got.Equal(want) {
					t.Errorf("VWSP(JOE) = %s, want %s", got, want)
				}
			} else if !errors.Is(err, ErrUndefined) {
				t.Errorf("VWSP(JOE) error = %v, want ErrUndefined", err)
			}
		})
	}
}

func TestVWSPInsertionOrderInvariance(t *testing.T) {
	asOf := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	type fill struct {
		age      time.Duration
		quantity int
		price    int
	}
	fills := []fill{
		{4 * time.Minute, 100, 70},
		{2 * time.Minute, 50, 72},
		{1 * time.Minute, 25, 68},
	}
	reversed := []fill{fills[2], fills[1], fills[0]}

	vwsp := func(order []fill) Money {
		ex := newTestExchange(t)
		for _, f := range order {
			if _, err := ex.Record("ALE", asOf.Add(-f.age), Q(f.quantity), Buy, M(f.price, "GBP")); err != nil {
				t.Fatal(err)
			}
		}
		got, err := ex.VWSP("ALE", asOf)
		if err != nil {
			t.Fatal(err)
		}
		return got
	}

	if a, b := vwsp(fills), vwsp(reversed); !a.Equal(b) {
		t.Errorf("VWSP depends on insertion order: %s != %s", a, b)
	}
}

func TestVWSPUndefined(t *testing.T) {
	ex := newTestExchange(t)
	asOf := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// never traded
	if _, err := ex.VWSP("ALE", asOf); !errors.Is(err, ErrUndefined) {
		t.Errorf("VWSP with no trade: error = %v, want ErrUndefined", err)
	}
	// unknown symbol is not undefined, it is not found
	if _, err := ex.VWSP("VODKA", asOf); !errors.Is(err, ErrNotFound) {
		t.Errorf("VWSP(unknown): error = %v, want ErrNotFound", err)
	}
}

func TestAllShareIndex(t *testing.T) {
	ex := newTestExchange(t)
	asOf := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// two securities with volume weighted prices 2 and 8: sqrt(16) = 4
	if _, err := ex.Record("TEA", asOf.Add(-time.Minute), Q(100), Buy, M(2, "GBP")); err != nil {
		t.Fatal(err)
	}
	if _, err := ex.Record("POP", asOf.Add(-time.Minute), Q(100), Buy, M(8, "GBP")); err != nil {
		t.Fatal(err)
	}

	got, err := ex.AllShareIndex(asOf)
	if err != nil {
		t.Fatalf("AllShareIndex: %v", err)
	}
	if want := Q(4); !got.Equal(want) {
		t.Errorf("AllShareIndex = %s, want %s", got, want)
	}
}

func TestAllShareIndexExcludesUndefined(t *testing.T) {
	ex := newTestExchange(t)
	asOf := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	// ALE traded outside the window: its VWSP is undefined and must be
	// excluded from the mean, not contribute a 0 or a 1.
	if _, err := ex.Record("ALE", asOf.Add(-time.Hour), Q(100), Buy, M(65, "GBP")); err != nil {
		t.Fatal(err)
	}
	if _, err := ex.Record("TEA", asOf.Add(-time.Minute), Q(100), Buy, M(9, "GBP")); err != nil {
		t.Fatal(err)
	}

	got, err := ex.AllShareIndex(asOf)
	if err != nil {
		t.Fatalf("AllShareIndex: %v", err)
	}
	// geometric mean of the single defined VWSP
	if want := Q(9); !got.Equal(want) {
		t.Errorf("AllShareIndex = %s, want %s", got, want)
	}
}

func TestAllShareIndexUndefined(t *testing.T) {
	ex := newTestExchange(t)
	asOf := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	if _, err := ex.AllShareIndex(asOf); !errors.Is(err, ErrUndefined) {
		t.Errorf("AllShareIndex with no trade: error = %v, want ErrUndefined", err)
	}

	// a trade older than the window changes nothing
	if _, err := ex.Record("ALE", asOf.Add(-6*time.Minute), Q(50), Buy, M(65, "GBP")); err != nil {
		t.Fatal(err)
	}
	if _, err := ex.AllShareIndex(asOf); !errors.Is(err, ErrUndefined) {
		t.Errorf("AllShareIndex with only stale trades: error = %v, want ErrUndefined", err)
	}
}

func TestExampleScenario(t *testing.T) {
	// register Common "ABC" (last dividend 8, par 100); trade 100 @ 150 at
	// t0; yield = 8/150, P/E = 18.75, VWSP = 150.
	ex := New()
	if err := ex.Register(NewCommonStock("ABC", M(8, "GBP"), M(100, "GBP"))); err != nil {
		t.Fatal(err)
	}
	t0 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if _, err := ex.Record("ABC", t0, Q(100), Buy, M(150, "GBP")); err != nil {
		t.Fatal(err)
	}

	yield, err := ex.DividendYield("ABC", M(150, "GBP"))
	if err != nil {
		t.Fatal(err)
	}
	if got := yield.Round(4).String(); got != "0.0533" {
		t.Errorf("yield = %s, want 0.0533", got)
	}

	pe, err := ex.PERatio("ABC", M(150, "GBP"))
	if err != nil {
		t.Fatal(err)
	}
	if !pe.Equal(Q(18.75)) {
		t.Errorf("P/E = %s, want 18.75", pe)
	}

	vwsp, err := ex.VWSP("ABC", t0)
	if err != nil {
		t.Fatal(err)
	}
	if !vwsp.Equal(M(150, "GBP")) {
		t.Errorf("VWSP = %s, want 150", vwsp)
	}
}
