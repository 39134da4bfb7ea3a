package orders

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/nbp"
	"github.com/guttosm/nbpstat/internal/series"
)

// Spread is one ranked currency of a sort-by-difference run.
type Spread struct {
	Code       string  `json:"code"`
	Currency   string  `json:"currency"`
	Bid        float64 `json:"bid"`
	Ask        float64 `json:"ask"`
	Difference float64 `json:"difference"`
}

// SortByDifferenceResult is the payload of a sort-by-difference run.
type SortByDifferenceResult struct {
	Date       civil.Date `json:"date"`
	Currencies []Spread   `json:"currencies"`
}

// SortByDifference lists the N table C currencies with the widest ask-bid
// spread on a day.
type SortByDifference struct {
	base
	n    int
	date civil.Date
}

var countPattern = regexp.MustCompile(`^\d+$`)

// NewSortByDifference expects "N[,date]" with N >= 1.
func NewSortByDifference(args []string, env Env) *SortByDifference {
	o := &SortByDifference{base: newBase(KindSortByDifference, args, env)}
	if !o.checkArity(args, 1, 2) {
		return o
	}
	if !countPattern.MatchString(args[0]) {
		o.reject(fmt.Sprintf("%q is not a non-negative integer", args[0]))
		return o
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		o.reject(err.Error())
		return o
	}
	if n == 0 {
		o.reject("Can't print 0 currencies!")
		return o
	}
	o.n = n
	o.date = o.dateOrLastBusinessDay(args, 1)
	return o
}

func (o *SortByDifference) Describe() string {
	n := strconv.Itoa(o.n)
	if o.invalid != nil {
		n = o.rawArg(0)
	}
	return fmt.Sprintf("Printing the %s first currencies from table C sorted by the difference of their ask and bid price on a given date...", n)
}

func (o *SortByDifference) Run(ctx context.Context) (Result, error) {
	if o.invalid != nil {
		return Result{}, o.invalid
	}
	table, err := nbp.TableOn(ctx, o.env.Fetcher, nbp.TableC, o.date)
	if err != nil {
		return Result{Pages: 1}, &RunError{Op: fmt.Sprintf("The list of currencies could not be retrieved for the date %s", o.date), Err: err}
	}

	top := series.TopNByDifference(table.Rates, o.n, nbp.TableRateAsk, nbp.TableRateBid)
	res := SortByDifferenceResult{Date: o.date, Currencies: make([]Spread, 0, len(top))}
	lines := []string{fmt.Sprintf("The %d first currencies for the date %s are:", o.n, o.date)}
	for i, r := range top {
		s := Spread{Code: r.Code, Currency: r.Currency, Bid: r.Bid, Ask: r.Ask, Difference: r.Ask - r.Bid}
		res.Currencies = append(res.Currencies, s)
		lines = append(lines, fmt.Sprintf("%d. %s (Difference: %s)", i+1, s.Code, formatFloat(s.Difference)))
	}
	return Result{Lines: lines, Data: res, Pages: 1}, nil
}
