package orders

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/series"
)

// LowestPriceResult is the payload of a lowest-price run.
type LowestPriceResult struct {
	Code     string     `json:"code"`
	Currency string     `json:"currency"`
	Date     civil.Date `json:"date"`
	Bid      float64    `json:"bid"`
}

// LowestPrice finds the table C currency with the lowest bid on a day.
type LowestPrice struct {
	base
	date civil.Date
}

// NewLowestPrice expects an optional date.
func NewLowestPrice(args []string, env Env) *LowestPrice {
	o := &LowestPrice{base: newBase(KindLowestPrice, args, env)}
	if !o.checkArity(args, 0, 1) {
		return o
	}
	o.date = o.dateOrLastBusinessDay(args, 0)
	return o
}

func (o *LowestPrice) Describe() string {
	return "Finding the currency from table C which was the cheapest to buy on a given date..."
}

func (o *LowestPrice) Run(ctx context.Context) (Result, error) {
	if o.invalid != nil {
		return Result{}, o.invalid
	}
	fail := func(err error) error {
		return &RunError{Op: fmt.Sprintf("The cheapest currency could not be found for the date %s", o.date), Err: err}
	}

	table, err := nbp.TableOn(ctx, o.env.Fetcher, nbp.TableC, o.date)
	if err != nil {
		return Result{Pages: 1}, fail(err)
	}
	best, ok := series.MinBy(table.Rates, nbp.TableRateBid)
	if !ok {
		return Result{Pages: 1}, fail(ErrNoDataInRange)
	}
	res := LowestPriceResult{Code: best.Code, Currency: best.Currency, Date: table.EffectiveDate, Bid: best.Bid}
	return Result{
		Lines: []string{
			"Found currency: " + res.Code,
			"Date: " + res.Date.String(),
			"Bid price: " + formatFloat(res.Bid),
		},
		Data:  res,
		Pages: 1,
	}, nil
}
