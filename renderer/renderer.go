// Package renderer formats exchange reports as markdown strings, suitable
// for a terminal markdown renderer or for plain reading.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/exchange"
)

// marketRenderer formats the output of a market report into a markdown string.
type marketRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *marketRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// MarketMarkdown renders a market report to a markdown string.
func MarketMarkdown(report *exchange.MarketReport) string {
	r := &marketRenderer{Builder: &strings.Builder{}}

	r.Printf("# GBCE Market Report\n\n")
	r.Printf("As of %s.\n\n", report.AsOf.Format("2006-01-02 15:04:05"))

	r.renderQuotes(report.Quotes)

	r.Printf("## All Share Index\n\n")
	if report.HasIndex {
		r.Printf("Geometric mean of volume weighted prices: **%s**\n", report.Index.Round(4))
	} else {
		r.Printf("Undefined: no security traded in the quoting window.\n")
	}
	return r.String()
}

func (r *marketRenderer) renderQuotes(quotes []exchange.Quote) {
	r.Printf("## Securities\n\n")
	r.Printf("| Symbol | Type | Last Dividend | Fixed Dividend | Par Value | Last Traded | Yield | P/E | VWSP | Trades |\n")
	r.Printf("|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, q := range quotes {
		sec := q.Security
		fixed := "-"
		if pref, ok := sec.(exchange.PreferredStock); ok {
			fixed = pref.FixedDividend().String()
		}
		r.Printf("| %s | %s | %s | %s | %s | %s | %s | %s | %s | %d |\n",
			sec.Symbol(), sec.Type(), sec.LastDividend(), fixed, sec.ParValue(),
			orDash(q.HasTraded, func() string { return q.LastTraded.String() }),
			orDash(q.HasYield, func() string { return q.Yield.Round(4).String() }),
			orDash(q.HasPE, func() string { return q.PE.Round(2).String() }),
			orDash(q.HasVWSP, func() string { return q.VWSP.String() }),
			q.Trades)
	}
	r.Printf("\n")
}

// orDash returns the rendered value when defined, "-" otherwise, so that an
// undefined metric can never read as a numeric zero.
func orDash(ok bool, render func() string) string {
	if !ok {
		return "-"
	}
	return render()
}

// TradesMarkdown renders a list of trades to a markdown table.
func TradesMarkdown(trades []exchange.Trade) string {
	r := &marketRenderer{Builder: &strings.Builder{}}
	r.Printf("## Trades\n\n")
	if len(trades) == 0 {
		r.Printf("No trades recorded.\n")
		return r.String()
	}
	r.Printf("| Timestamp | Symbol | Side | Quantity | Price | Notional |\n")
	r.Printf("|:---|:---|:---|---:|---:|---:|\n")
	for _, t := range trades {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			t.Timestamp().Format("2006-01-02 15:04:05"), t.Symbol(), t.Side(),
			t.Quantity(), t.Price(), t.Notional())
	}
	return r.String()
}
