package exchange

import (
	"errors"
	"time"
)

// Quote is the state of a single security in a market report. Metrics that
// are undefined at the report instant (never traded, empty window, zero
// dividend) are reported as absent rather than zero.
type Quote struct {
	Security   Security
	LastTraded Money
	HasTraded  bool
	Yield      Quantity
	HasYield   bool
	PE         Quantity
	HasPE      bool
	VWSP       Money
	HasVWSP    bool
	Trades     int // number of recorded trades, all time
}

// MarketReport is a snapshot of every registered security's metrics and the
// all share index at a given instant.
type MarketReport struct {
	AsOf     time.Time
	Quotes   []Quote
	Index    Quantity
	HasIndex bool
}

// Report computes a market report at asOf. Yield and P/E are quoted against
// the last traded price, so they stay absent until the security first
// trades.
func (e *Exchange) Report(asOf time.Time) *MarketReport {
	report := &MarketReport{AsOf: asOf}

	for sec := range e.Registry.Securities() {
		q := Quote{Security: sec, Trades: e.Ledger.TradeCount(sec.Symbol())}

		if last, ok := e.Registry.LastTraded(sec.Symbol()); ok {
			q.LastTraded, q.HasTraded = last, true
			if y, err := e.DividendYield(sec.Symbol(), last); err == nil {
				q.Yield, q.HasYield = y, true
			}
			if pe, err := e.PERatio(sec.Symbol(), last); err == nil {
				q.PE, q.HasPE = pe, true
			}
		}
		if vwsp, err := e.VWSP(sec.Symbol(), asOf); err == nil {
			q.VWSP, q.HasVWSP = vwsp, true
		}
		report.Quotes = append(report.Quotes, q)
	}

	if index, err := e.AllShareIndex(asOf); err == nil {
		report.Index, report.HasIndex = index, true
	} else if !errors.Is(err, ErrUndefined) {
		// only ErrUndefined is expected here, anything else is a bug
		panic(err)
	}
	return report
}
