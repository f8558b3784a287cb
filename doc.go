// Package exchange implements the trading ledger of the Global Beverage
// Corporation Exchange (GBCE), a small market trading a fixed set of
// beverage-company stocks.
//
// The core functionalities include:
//   - Security Registry: the static definition of each tradeable stock
//     (common or preferred, dividend terms, par value) and the last price
//     it traded at.
//   - Trading Ledger: an immutable, append-only record of every trade
//     executed against a registered stock.
//   - Metrics: dividend yield and P/E ratio for a given market price, the
//     volume weighted stock price over the quoting window, and the GBCE
//     All Share Index (geometric mean of the volume weighted prices).
//
// All computations are exact decimal arithmetic except the final root of
// the index, and none of them reads the wall clock: the reference instant
// is always an explicit argument, so results are reproducible.
//
// This package serves as the foundational logic for the `gbce` command-line
// tool, which drives it from a JSONL trade journal.
package exchange
