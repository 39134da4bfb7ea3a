package orders

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/nbp"
)

// DatePriceResult is the payload of a date-price run. A nil price means
// that lookup failed; its reason is in the matching error field.
type DatePriceResult struct {
	Code          string     `json:"code"`
	Date          civil.Date `json:"date"`
	CurrencyPrice *float64   `json:"currency_price,omitempty"`
	CurrencyError string     `json:"currency_error,omitempty"`
	GoldPrice     *float64   `json:"gold_price,omitempty"`
	GoldError     string     `json:"gold_error,omitempty"`
}

// DatePrice reports the table A mid rate of one currency and the price of
// gold on the same day. The two lookups fail independently.
type DatePrice struct {
	base
	code string
	date civil.Date
}

// NewDatePrice expects "currency[,date]".
func NewDatePrice(args []string, env Env) *DatePrice {
	o := &DatePrice{base: newBase(KindDatePrice, args, env)}
	if !o.checkArity(args, 1, 2) {
		return o
	}
	o.code = o.parseCode(args[0])
	o.date = o.dateOrLastBusinessDay(args, 1)
	return o
}

func (o *DatePrice) Describe() string {
	return "Price of gold and given currency in a given day..."
}

func (o *DatePrice) Run(ctx context.Context) (Result, error) {
	if o.invalid != nil {
		return Result{}, o.invalid
	}
	day := o.date.String()
	data := DatePriceResult{Code: o.code, Date: o.date}
	var lines []string
	var errs []error

	series, err := nbp.RateOn(ctx, o.env.Fetcher, nbp.TableA, o.code, o.date)
	if err == nil && len(series.Rates) == 0 {
		err = ErrNoDataInRange
	}
	if err != nil {
		rerr := &RunError{Op: fmt.Sprintf("The price of %s on %s could not be retrieved", o.code, day), Err: err}
		errs = append(errs, rerr)
		data.CurrencyError = err.Error()
		lines = append(lines, rerr.Error())
	} else {
		mid := series.Rates[0].Mid
		data.CurrencyPrice = &mid
		lines = append(lines, fmt.Sprintf("The price of %s on %s was %s", series.Code, day, formatFloat(mid)))
	}

	gold, err := nbp.GoldOn(ctx, o.env.Fetcher, o.date)
	if err != nil {
		rerr := &RunError{Op: fmt.Sprintf("The price of gold on %s could not be retrieved", day), Err: err}
		errs = append(errs, rerr)
		data.GoldError = err.Error()
		lines = append(lines, rerr.Error())
	} else {
		price := gold.Price
		data.GoldPrice = &price
		lines = append(lines, fmt.Sprintf("The price of gold on %s was %s", day, formatFloat(price)))
	}

	if len(errs) == 2 {
		return Result{Pages: 2}, errors.Join(errs...)
	}
	return Result{Lines: lines, Data: data, Pages: 2}, nil
}
