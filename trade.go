package exchange

import (
	"fmt"
	"time"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide parses a string into a Side. It accepts both spellings used in
// the journal ("buy") and on the wire ("BUY").
func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY", "buy":
		return Buy, nil
	case "SELL", "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// TimestampFormat is the format used to persist trade timestamps.
const TimestampFormat = time.RFC3339Nano

// Trade represents a single executed trade against a registered security.
//
// A trade is immutable once created: it is appended to the ledger and never
// modified or deleted.
type Trade struct {
	symbol    string
	timestamp time.Time
	quantity  Quantity
	side      Side
	price     Money
}

// NewTrade creates a trade after validating its fields. It fails wrapping
// ErrInvalidInput when the quantity is not a positive whole number of
// shares, the price is not positive, or the side is unknown.
func NewTrade(symbol string, timestamp time.Time, quantity Quantity, side Side, price Money) (Trade, error) {
	if !quantity.IsPositive() || !quantity.IsInteger() {
		return Trade{}, fmt.Errorf("%w: quantity must be a positive number of shares, got %s", ErrInvalidInput, quantity)
	}
	if !price.IsPositive() {
		return Trade{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidInput, price)
	}
	if side != Buy && side != Sell {
		return Trade{}, fmt.Errorf("%w: unknown trade side %q", ErrInvalidInput, string(side))
	}
	return Trade{symbol: symbol, timestamp: timestamp, quantity: quantity, side: side, price: price}, nil
}

func (t Trade) Symbol() string       { return t.symbol }
func (t Trade) Timestamp() time.Time { return t.timestamp }
func (t Trade) Quantity() Quantity   { return t.quantity }
func (t Trade) Side() Side           { return t.side }
func (t Trade) Price() Money         { return t.price }

// Notional returns price times quantity, the traded value of the trade.
func (t Trade) Notional() Money { return t.price.Mul(t.quantity) }

func (t Trade) Equal(o Trade) bool {
	return t.symbol == o.symbol &&
		t.timestamp.Equal(o.timestamp) &&
		t.quantity.Equal(o.quantity) &&
		t.side == o.side &&
		t.price.Equal(o.price)
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s @ %s (%s)", t.side, t.quantity, t.symbol, t.price, t.timestamp.Format(TimestampFormat))
}

func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", t.symbol)
	w.Append("timestamp", t.timestamp.Format(TimestampFormat))
	w.Append("quantity", t.quantity)
	w.Append("side", string(t.side))
	w.Append("price", t.price.Amount())
	w.Optional("currency", t.price.Currency())
	return w.MarshalJSON()
}
