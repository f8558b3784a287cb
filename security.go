package exchange

import (
	"fmt"
	"regexp"
)

// symbolRegex checks the GBCE symbol format: 1 to 5 uppercase letters.
var symbolRegex = regexp.MustCompile(`^[A-Z]{1,5}$`)

// ValidateSymbol checks that a string is a well-formed stock symbol.
func ValidateSymbol(symbol string) error {
	if !symbolRegex.MatchString(symbol) {
		return fmt.Errorf("invalid symbol %q: must be 1 to 5 uppercase letters", symbol)
	}
	return nil
}

// SecurityType identifies the kind of a stock.
type SecurityType int

const (
	// Common stocks pay whatever dividend was last declared.
	Common SecurityType = iota
	// Preferred stocks pay a fixed percentage of their par value.
	Preferred
)

func (t SecurityType) String() string {
	switch t {
	case Common:
		return "common"
	case Preferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// ParseSecurityType parses a string into a SecurityType.
func ParseSecurityType(s string) (SecurityType, error) {
	switch s {
	case "common":
		return Common, nil
	case "preferred":
		return Preferred, nil
	default:
		return 0, fmt.Errorf("unknown security type: %q", s)
	}
}

// Security defines the common interface of all tradeable stocks.
//
// A security is an immutable value: the last traded price is not part of it,
// the Registry tracks that on behalf of the Ledger.
type Security interface {
	Symbol() string     // Symbol returns the unique stock symbol (e.g. "GIN").
	Type() SecurityType // Type returns the kind of the stock.
	LastDividend() Money
	ParValue() Money

	// DividendPerShare returns the per-share dividend amount used by the
	// P/E ratio and the dividend yield. Each variant computes its own.
	DividendPerShare() Money

	// Validate checks the definition for structural correctness.
	Validate() error
}

// stock is a component embedded in every security variant.
type stock struct {
	symbol       string
	lastDividend Money
	parValue     Money
}

func (s stock) Symbol() string      { return s.symbol }
func (s stock) LastDividend() Money { return s.lastDividend }
func (s stock) ParValue() Money     { return s.parValue }

// Validate checks the fields shared by all variants.
func (s stock) Validate() error {
	if err := ValidateSymbol(s.symbol); err != nil {
		return err
	}
	if s.lastDividend.IsNegative() {
		return fmt.Errorf("security %q: last dividend must not be negative, got %s", s.symbol, s.lastDividend)
	}
	if !s.parValue.IsPositive() {
		return fmt.Errorf("security %q: par value must be positive, got %s", s.symbol, s.parValue)
	}
	return nil
}

// CommonStock represents a common stock. Its dividend per share is the last
// declared dividend.
type CommonStock struct {
	stock
}

// NewCommonStock creates a common stock definition.
func NewCommonStock(symbol string, lastDividend, parValue Money) CommonStock {
	return CommonStock{stock{symbol: symbol, lastDividend: lastDividend, parValue: parValue}}
}

func (s CommonStock) Type() SecurityType      { return Common }
func (s CommonStock) DividendPerShare() Money { return s.lastDividend }

func (s CommonStock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.symbol)
	w.Append("type", Common.String())
	w.Append("lastDividend", s.lastDividend.Amount())
	w.Append("parValue", s.parValue.Amount())
	w.Optional("currency", s.parValue.Currency())
	return w.MarshalJSON()
}

// PreferredStock represents a preferred stock. Its dividend per share is the
// fixed dividend rate applied to the par value.
type PreferredStock struct {
	stock
	fixedDividend Percent
}

// NewPreferredStock creates a preferred stock definition.
func NewPreferredStock(symbol string, lastDividend Money, fixedDividend Percent, parValue Money) PreferredStock {
	return PreferredStock{
		stock:         stock{symbol: symbol, lastDividend: lastDividend, parValue: parValue},
		fixedDividend: fixedDividend,
	}
}

func (s PreferredStock) Type() SecurityType { return Preferred }

// FixedDividend returns the fixed dividend rate.
func (s PreferredStock) FixedDividend() Percent { return s.fixedDividend }

func (s PreferredStock) DividendPerShare() Money { return s.parValue.Mul(s.fixedDividend.Rate()) }

// Validate checks the shared fields and requires a fixed dividend: a
// preferred stock without one is a malformed definition, not a zero-dividend
// stock.
func (s PreferredStock) Validate() error {
	if err := s.stock.Validate(); err != nil {
		return err
	}
	if !s.fixedDividend.IsPositive() {
		return fmt.Errorf("preferred security %q: fixed dividend is required and must be positive, got %s", s.symbol, s.fixedDividend)
	}
	return nil
}

func (s PreferredStock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.symbol)
	w.Append("type", Preferred.String())
	w.Append("lastDividend", s.lastDividend.Amount())
	w.Append("fixedDividend", s.fixedDividend)
	w.Append("parValue", s.parValue.Amount())
	w.Optional("currency", s.parValue.Currency())
	return w.MarshalJSON()
}
