package exchange

import (
	"fmt"
	"iter"
	"time"
)

// Ledger owns the trade history of every security.
//
// Per symbol, trades are kept in insertion order, which is not necessarily
// timestamp order: a trade may be recorded late, its timestamp is what
// matters for windowed metrics. The history is append-only and unbounded;
// eviction is the host's concern, not the ledger's.
type Ledger struct {
	trades map[string][]Trade
	log    []Trade // the global journal, in insertion order
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{trades: make(map[string][]Trade)}
}

// Record validates and appends a trade for a registered security, and updates
// the registry's last traded price, whatever the side of the trade.
//
// It fails wrapping ErrNotFound for an unregistered symbol and
// ErrInvalidInput for a bad quantity, price or side. On failure nothing is
// mutated: no trade is appended and the last traded price is untouched.
func (l *Ledger) Record(reg *Registry, symbol string, timestamp time.Time, quantity Quantity, side Side, price Money) (Trade, error) {
	if !reg.Has(symbol) {
		return Trade{}, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}
	t, err := NewTrade(symbol, timestamp, quantity, side, price)
	if err != nil {
		return Trade{}, err
	}
	l.trades[symbol] = append(l.trades[symbol], t)
	l.log = append(l.log, t)
	reg.setLastTraded(symbol, price)
	return t, nil
}

// Trades iterates over the trade history of a symbol, in insertion order.
func (l *Ledger) Trades(symbol string) iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range l.trades[symbol] {
			if !yield(t) {
				return
			}
		}
	}
}

// All iterates over every recorded trade, in insertion order.
func (l *Ledger) All() iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range l.log {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the total number of recorded trades.
func (l *Ledger) Len() int { return len(l.log) }

// TradeCount returns the number of trades recorded for a symbol.
func (l *Ledger) TradeCount(symbol string) int { return len(l.trades[symbol]) }

// tradesIn iterates over the trades of a symbol whose timestamp falls in the
// half-open window (asOf-window, asOf]: a trade exactly window old is
// excluded, a trade at asOf is included, and a future-dated trade is not yet
// visible.
func (l *Ledger) tradesIn(symbol string, asOf time.Time, window time.Duration) iter.Seq[Trade] {
	cutoff := asOf.Add(-window)
	return func(yield func(Trade) bool) {
		for _, t := range l.trades[symbol] {
			if t.timestamp.After(cutoff) && !t.timestamp.After(asOf) {
				if !yield(t) {
					return
				}
			}
		}
	}
}
