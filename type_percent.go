package exchange

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent represents a percentage, such as the fixed dividend rate of a
// preferred stock. It keeps the exact decimal value: P(2) is 2%.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// Rate returns the percentage as a plain ratio: P(2).Rate() is 0.02.
func (p Percent) Rate() Quantity { return Quantity{value: p.value.Div(hundred)} }

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }
func (p Percent) IsPositive() bool     { return p.value.IsPositive() }
func (p Percent) IsNegative() bool     { return p.value.IsNegative() }

func (p Percent) String() string { return p.value.String() + "%" }

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}
func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
