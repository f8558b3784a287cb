package exchange

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// QuotingWindow is the lookback used by the volume weighted stock price and
// the all share index.
const QuotingWindow = 5 * time.Minute

// Exchange combines the security registry with the trading ledger. It serves
// as the central point of access for recording trades and querying derived
// metrics.
//
// An Exchange performs no locking: when embedded in a concurrent host, the
// host must serialize Register and Record against the metric queries.
type Exchange struct {
	Registry *Registry
	Ledger   *Ledger
}

// New creates an exchange with an empty registry and ledger.
func New() *Exchange {
	return &Exchange{Registry: NewRegistry(), Ledger: NewLedger()}
}

// NewExchange creates an exchange over an existing registry and ledger.
func NewExchange(reg *Registry, ledger *Ledger) *Exchange {
	return &Exchange{Registry: reg, Ledger: ledger}
}

// Register adds a security definition to the registry.
func (e *Exchange) Register(sec Security) error {
	return e.Registry.Register(sec)
}

// Record appends a trade for a registered security. See Ledger.Record.
func (e *Exchange) Record(symbol string, timestamp time.Time, quantity Quantity, side Side, price Money) (Trade, error) {
	return e.Ledger.Record(e.Registry, symbol, timestamp, quantity, side, price)
}

// DividendYield computes the dividend yield of a security for a given market
// price: dividend per share divided by the price.
//
// It fails wrapping ErrNotFound for an unregistered symbol and
// ErrInvalidInput when the price is not positive.
func (e *Exchange) DividendYield(symbol string, price Money) (Quantity, error) {
	sec, err := e.Registry.Get(symbol)
	if err != nil {
		return Quantity{}, err
	}
	if !price.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidInput, price)
	}
	return sec.DividendPerShare().DivPrice(price), nil
}

// PERatio computes the price/earnings ratio of a security for a given market
// price: price divided by the dividend per share.
//
// When the dividend per share is zero the ratio is mathematically undefined
// and the error wraps ErrUndefined: it never silently divides nor returns a
// zero that a caller could mistake for a real ratio.
func (e *Exchange) PERatio(symbol string, price Money) (Quantity, error) {
	sec, err := e.Registry.Get(symbol)
	if err != nil {
		return Quantity{}, err
	}
	if !price.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidInput, price)
	}
	dividend := sec.DividendPerShare()
	if dividend.IsZero() {
		return Quantity{}, fmt.Errorf("%w: P/E ratio of %q: dividend per share is zero", ErrUndefined, symbol)
	}
	return price.DivPrice(dividend), nil
}

// VWSP computes the volume weighted stock price of a security over the
// quoting window ending at asOf: sum of price times quantity over the sum of
// quantities, for the trades with asOf-5m < timestamp <= asOf.
//
// When no trade falls in the window the price is undefined and the error
// wraps ErrUndefined; a zero here would be indistinguishable from "no data"
// and would corrupt the all share index.
func (e *Exchange) VWSP(symbol string, asOf time.Time) (Money, error) {
	if _, err := e.Registry.Get(symbol); err != nil {
		return Money{}, err
	}
	var notional Money
	var volume Quantity
	for t := range e.Ledger.tradesIn(symbol, asOf, QuotingWindow) {
		notional = notional.Add(t.Notional())
		volume = volume.Add(t.Quantity())
	}
	if volume.IsZero() {
		return Money{}, fmt.Errorf("%w: no %q trade in the %s window ending at %s", ErrUndefined, symbol, QuotingWindow, asOf.Format(TimestampFormat))
	}
	return notional.Div(volume), nil
}

// AllShareIndex computes the GBCE All Share Index at asOf: the geometric
// mean of the volume weighted stock prices of every security that traded in
// the quoting window. Securities with an undefined volume weighted price are
// excluded from the mean, not counted as one or zero.
//
// When no security traded in the window the index is undefined and the error
// wraps ErrUndefined.
//
// The nth root is taken in float64; given a fixed handful of securities the
// precision loss is negligible against the exact decimal alternative.
func (e *Exchange) AllShareIndex(asOf time.Time) (Quantity, error) {
	product := 1.0
	n := 0
	for sec := range e.Registry.Securities() {
		vwsp, err := e.VWSP(sec.Symbol(), asOf)
		if err != nil {
			if errors.Is(err, ErrUndefined) {
				continue
			}
			return Quantity{}, err
		}
		product *= vwsp.AsFloat()
		n++
	}
	if n == 0 {
		return Quantity{}, fmt.Errorf("%w: no security traded in the %s window ending at %s", ErrUndefined, QuotingWindow, asOf.Format(TimestampFormat))
	}
	mean := math.Pow(product, 1.0/float64(n))
	return Q(decimal.NewFromFloat(mean)), nil
}
