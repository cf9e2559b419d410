// Package marketdata supplies dated cash flows to the solver from
// static data, CSV files, or a Postgres query.
package marketdata

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/meenmo/xirr/utils"
	"github.com/meenmo/xirr/xirr"
)

// PaymentSource supplies the dated cash flows of one investment.
type PaymentSource interface {
	Payments() ([]xirr.Payment, error)
}

// StaticSource is a slice-backed implementation for development/testing.
type StaticSource struct {
	payments []xirr.Payment
}

func NewStaticSource(payments []xirr.Payment) *StaticSource {
	return &StaticSource{payments: payments}
}

func (s *StaticSource) Payments() ([]xirr.Payment, error) {
	out := make([]xirr.Payment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

// ReadCSV parses `date,amount` rows into payments. Dates are YYYY-MM-DD;
// amounts are parsed as exact decimals before conversion to float64, so
// money text like "20000.00" never picks up binary parse noise.
// A header row starting with "date" is skipped.
func ReadCSV(r io.Reader) ([]xirr.Payment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var payments []xirr.Payment
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		line++
		if line == 1 && record[0] == "date" {
			continue
		}

		date, err := utils.ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: invalid date %q", line, record[0])
		}
		amount, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: invalid amount %q", line, record[1])
		}

		payments = append(payments, xirr.NewPayment(date, amount.InexactFloat64()))
	}
	return payments, nil
}
