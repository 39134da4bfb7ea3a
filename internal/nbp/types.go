package nbp

import "cloud.google.com/go/civil"

// Exchange-rate tables published by NBP.
const (
	// TableA holds average (mid) rates of foreign currencies.
	TableA = "a"
	// TableC holds buy (bid) and sell (ask) rates.
	TableC = "c"
)

// GoldPrice is one entry of the cenyzlota endpoint: the price of 1g of
// gold in PLN.
type GoldPrice struct {
	Date  civil.Date `json:"data"`
	Price float64    `json:"cena"`
}

// Rate is one day of a single-currency series. Table A fills Mid, table C
// fills Bid and Ask.
type Rate struct {
	No            string     `json:"no"`
	EffectiveDate civil.Date `json:"effectiveDate"`
	Mid           float64    `json:"mid,omitempty"`
	Bid           float64    `json:"bid,omitempty"`
	Ask           float64    `json:"ask,omitempty"`
}

// RateSeries is the object returned by the exchangerates/rates endpoint.
type RateSeries struct {
	Table    string `json:"table"`
	Currency string `json:"currency"`
	Code     string `json:"code"`
	Rates    []Rate `json:"rates"`
}

// TableRate is one currency row of a published table.
type TableRate struct {
	Currency string  `json:"currency"`
	Code     string  `json:"code"`
	Mid      float64 `json:"mid,omitempty"`
	Bid      float64 `json:"bid,omitempty"`
	Ask      float64 `json:"ask,omitempty"`
}

// Table is one published table; the exchangerates/tables endpoint returns an
// array of them, one per publication day.
type Table struct {
	Table         string      `json:"table"`
	No            string      `json:"no"`
	EffectiveDate civil.Date  `json:"effectiveDate"`
	Rates         []TableRate `json:"rates"`
}

// Accessors used with the series helpers.

func GoldPriceValue(g GoldPrice) float64 { return g.Price }
func RateMid(r Rate) float64             { return r.Mid }
func RateBid(r Rate) float64             { return r.Bid }
func RateAsk(r Rate) float64             { return r.Ask }
func TableRateMid(r TableRate) float64   { return r.Mid }
func TableRateBid(r TableRate) float64   { return r.Bid }
func TableRateAsk(r TableRate) float64   { return r.Ask }
func TableRateCode(r TableRate) string   { return r.Code }
func TableRows(t Table) []TableRate      { return t.Rates }
func TableDate(t Table) civil.Date       { return t.EffectiveDate }
