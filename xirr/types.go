// Package xirr computes the extended internal rate of return of an
// irregular sequence of dated cash flows: the single annualized rate at
// which their net present value is zero.
//
// Outflows (investments) carry negative amounts, inflows positive ones.
// Day counts use a fixed ACT/365 convention.
package xirr

import (
	"errors"
	"time"
)

var (
	// ErrInvalidPayments is returned before any iteration when the cash
	// flow set is empty or does not contain both inflows and outflows.
	ErrInvalidPayments = errors.New("invalid payments")
	// ErrNoSolution is returned when no sign change in NPV exists within
	// the bracket search range, i.e. the flows admit no rate root there.
	ErrNoSolution = errors.New("no solution in bracket range")
	// ErrNoConvergence is returned when the iteration cap is exhausted
	// before the NPV magnitude falls below tolerance.
	ErrNoConvergence = errors.New("no convergence")
)

// Payment is a single dated cash flow.
//
// Only the calendar day of Date is significant; NewPayment normalizes
// away any time-of-day component.
type Payment struct {
	Date   time.Time
	Amount float64
}

// NewPayment builds a Payment with the date truncated to midnight UTC.
func NewPayment(date time.Time, amount float64) Payment {
	return Payment{Date: dateOnly(date), Amount: amount}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
