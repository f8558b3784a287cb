package exchange

import (
	"fmt"
	"iter"
)

// Registry holds the securities tradeable on the exchange.
//
// The set of symbols is fixed once loaded: securities can be registered but
// never redefined or removed. The registry also tracks the last traded price
// per symbol; only the Ledger's recording path mutates it.
type Registry struct {
	securities []Security
	index      map[string]Security
	lastTraded map[string]Money
}

// NewRegistry returns a new empty security registry.
func NewRegistry() *Registry {
	return &Registry{
		securities: make([]Security, 0),
		index:      make(map[string]Security),
		lastTraded: make(map[string]Money),
	}
}

// Register adds a security definition to the registry.
//
// It fails wrapping ErrValidation if the definition is structurally invalid
// or if the symbol is already registered.
func (r *Registry) Register(sec Security) error {
	if err := sec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if r.Has(sec.Symbol()) {
		return fmt.Errorf("%w: symbol %q is already registered", ErrValidation, sec.Symbol())
	}
	r.securities = append(r.securities, sec)
	r.index[sec.Symbol()] = sec
	return nil
}

func (r *Registry) Has(symbol string) bool {
	_, ok := r.index[symbol]
	return ok
}

// Get returns the security registered with this symbol, or an error wrapping
// ErrNotFound.
func (r *Registry) Get(symbol string) (Security, error) {
	sec, ok := r.index[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, symbol)
	}
	return sec, nil
}

// Len returns the number of registered securities.
func (r *Registry) Len() int { return len(r.securities) }

// Securities iterates over all registered securities in registration order.
func (r *Registry) Securities() iter.Seq[Security] {
	return func(yield func(Security) bool) {
		for _, sec := range r.securities {
			if !yield(sec) {
				return
			}
		}
	}
}

// LastTraded returns the price at which the security last traded. The price
// is undefined until the first trade is recorded, in which case ok is false.
func (r *Registry) LastTraded(symbol string) (price Money, ok bool) {
	price, ok = r.lastTraded[symbol]
	return price, ok
}

// setLastTraded records the last traded price. Only the ledger recording
// path calls it.
func (r *Registry) setLastTraded(symbol string, price Money) {
	r.lastTraded[symbol] = price
}
