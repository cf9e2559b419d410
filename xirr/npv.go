package xirr

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/xirr/utils"
	"github.com/meenmo/xirr/xirr/config"
)

// NPV returns the net present value of the payments at the given annual
// rate, discounted to the earliest payment date with ACT/365 day counts.
//
// This is the Excel XNPV equivalent. The rate must satisfy 1+rate > 0.
func NPV(rate float64, payments []Payment) (float64, error) {
	if len(payments) == 0 {
		return 0, fmt.Errorf("NPV: empty cash flow set")
	}
	if 1+rate <= 0 {
		return 0, fmt.Errorf("NPV: rate %v is at or below -100%%", rate)
	}

	origin := payments[0].Date
	for _, p := range payments[1:] {
		if p.Date.Before(origin) {
			origin = p.Date
		}
	}

	v, _ := npvAndDeriv(rate, origin, payments, config.GetConfig().DaysInYear)
	return v, nil
}

// npvAndDeriv returns (npv, dNPV/dRate) at the given rate.
//
//	t_i   = days(origin, date_i) / 365
//	npv   = Σ a_i · (1+rate)^(−t_i)
//	deriv = Σ a_i · (−t_i) · (1+rate)^(−t_i−1)
//
// Callers must guarantee 1+rate > 0; the origin is the minimum date, so
// every exponent is non-positive and (1+rate)^0 == 1 holds exactly for
// payments on the origin date.
func npvAndDeriv(rate float64, origin time.Time, payments []Payment, yearDays float64) (float64, float64) {
	var value, deriv float64
	for _, p := range payments {
		t := utils.Days(origin, p.Date) / yearDays
		value += p.Amount * math.Pow(1+rate, -t)
		deriv += p.Amount * -t * math.Pow(1+rate, -t-1)
	}
	return value, deriv
}
