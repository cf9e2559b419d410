package main

import (
	"fmt"
	"log"
	"time"

	"github.com/meenmo/xirr/marketdata"
	"github.com/meenmo/xirr/xirr"
)

func main() {
	source := marketdata.NewStaticSource([]xirr.Payment{
		xirr.NewPayment(time.Date(2015, 6, 11, 0, 0, 0, 0, time.UTC), -1000.0),
		xirr.NewPayment(time.Date(2015, 7, 21, 0, 0, 0, 0, time.UTC), -9000.0),
		xirr.NewPayment(time.Date(2015, 10, 17, 0, 0, 0, 0, time.UTC), -3000.0),
		xirr.NewPayment(time.Date(2018, 6, 10, 0, 0, 0, 0, time.UTC), 20000.0),
	})

	payments, err := source.Payments()
	if err != nil {
		log.Fatal(err)
	}

	res, err := xirr.Solve(payments)
	if err != nil {
		log.Fatal(err)
	}

	npv, _ := xirr.NPV(res.Rate, payments)

	fmt.Printf("XIRR: %.6f%%\n", res.Rate*100)
	fmt.Printf("Iterations: %d\n", res.Iterations)
	fmt.Printf("Residual NPV: %.2e\n", npv)
}
