package exchange

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The journal is a stream of JSONL lines, one command per line. Security
// declarations come first by convention, trades follow in recording order.
const (
	cmdDeclare = "declare"
	cmdBuy     = "buy"
	cmdSell    = "sell"
)

// declareCmd is a specialized struct for decoding declaration lines. The
// fixed dividend is a pointer so that a supplied-but-zero value can be told
// apart from an absent one.
type declareCmd struct {
	Symbol        string           `json:"symbol"`
	Type          string           `json:"type"`
	LastDividend  decimal.Decimal  `json:"lastDividend"`
	FixedDividend *decimal.Decimal `json:"fixedDividend"`
	ParValue      decimal.Decimal  `json:"parValue"`
	Currency      string           `json:"currency"`
}

// tradeCmd is a specialized struct for decoding buy and sell lines.
type tradeCmd struct {
	Symbol    string          `json:"symbol"`
	Timestamp string          `json:"timestamp"`
	Quantity  Quantity        `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}

// EncodeSecurity writes a single declaration line to the journal.
func EncodeSecurity(w io.Writer, sec Security) error {
	var jw jsonObjectWriter
	jw.Append("command", cmdDeclare)
	jw.EmbedFrom(sec)
	return writeLine(w, &jw)
}

// EncodeTrade writes a single trade line to the journal. The side of the
// trade becomes the command, so a line reads naturally as "buy 100 TEA".
func EncodeTrade(w io.Writer, t Trade) error {
	var jw jsonObjectWriter
	jw.Append("command", strings.ToLower(string(t.Side())))
	jw.Append("symbol", t.Symbol())
	jw.Append("timestamp", t.Timestamp().Format(TimestampFormat))
	jw.Append("quantity", t.Quantity())
	jw.Append("price", t.Price().Amount())
	jw.Optional("currency", t.Price().Currency())
	return writeLine(w, &jw)
}

func writeLine(w io.Writer, jw *jsonObjectWriter) error {
	data, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// DecodeJournal reads a stream of JSONL commands and replays them into a new
// Exchange: declarations register securities, buys and sells record trades.
// Replaying goes through the same validations as the live operations, so a
// journal line that would have been rejected at recording time is rejected
// at decoding time too.
func DecodeJournal(r io.Reader) (*Exchange, error) {
	ex := New()
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command string `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", line, string(lineBytes), err)
		}

		var err error
		switch identifier.Command {
		case cmdDeclare:
			err = decodeDeclare(ex, lineBytes)
		case cmdBuy:
			err = decodeTrade(ex, lineBytes, Buy)
		case cmdSell:
			err = decodeTrade(ex, lineBytes, Sell)
		default:
			err = fmt.Errorf("unknown command %q", identifier.Command)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading journal: %w", err)
	}
	return ex, nil
}

func decodeDeclare(ex *Exchange, lineBytes []byte) error {
	var temp declareCmd
	if err := json.Unmarshal(lineBytes, &temp); err != nil {
		return err
	}
	typ, err := ParseSecurityType(temp.Type)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var sec Security
	switch typ {
	case Common:
		if temp.FixedDividend != nil {
			return fmt.Errorf("%w: common security %q must not carry a fixed dividend", ErrValidation, temp.Symbol)
		}
		sec = NewCommonStock(temp.Symbol, M(temp.LastDividend, temp.Currency), M(temp.ParValue, temp.Currency))
	case Preferred:
		if temp.FixedDividend == nil {
			return fmt.Errorf("%w: preferred security %q requires a fixed dividend", ErrValidation, temp.Symbol)
		}
		sec = NewPreferredStock(temp.Symbol, M(temp.LastDividend, temp.Currency), P(*temp.FixedDividend), M(temp.ParValue, temp.Currency))
	}
	return ex.Register(sec)
}

func decodeTrade(ex *Exchange, lineBytes []byte, side Side) error {
	var temp tradeCmd
	if err := json.Unmarshal(lineBytes, &temp); err != nil {
		return err
	}
	timestamp, err := time.Parse(TimestampFormat, temp.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp %q: %w", ErrInvalidInput, temp.Timestamp, err)
	}
	_, err = ex.Record(temp.Symbol, timestamp, temp.Quantity, side, M(temp.Price, temp.Currency))
	return err
}

// EncodeJournal writes the whole exchange state in canonical form:
// declarations sorted by symbol, then trades sorted by timestamp (insertion
// order breaking ties). Decoding the result yields an equivalent exchange.
func EncodeJournal(w io.Writer, ex *Exchange) error {
	securities := slices.SortedFunc(ex.Registry.Securities(), func(a, b Security) int {
		return strings.Compare(a.Symbol(), b.Symbol())
	})
	for _, sec := range securities {
		if err := EncodeSecurity(w, sec); err != nil {
			return err
		}
	}

	trades := slices.Collect(ex.Ledger.All())
	slices.SortStableFunc(trades, func(a, b Trade) int {
		return a.Timestamp().Compare(b.Timestamp())
	})
	for _, t := range trades {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}
