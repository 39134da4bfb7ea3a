package nbp

import (
	"context"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/dates"
)

// GoldPath is the gold price on one day.
func GoldPath(d civil.Date) string {
	return "cenyzlota/" + d.String()
}

// GoldRangePath is the gold price series over r.
func GoldRangePath(r dates.Range) string {
	return "cenyzlota/" + r.Start.String() + "/" + r.End.String()
}

// RatePath is a single currency's rate from table on one day.
func RatePath(table, code string, d civil.Date) string {
	return "exchangerates/rates/" + table + "/" + strings.ToLower(code) + "/" + d.String()
}

// RateRangePath is a single currency's rate series over r.
func RateRangePath(table, code string, r dates.Range) string {
	return "exchangerates/rates/" + table + "/" + strings.ToLower(code) + "/" + r.Start.String() + "/" + r.End.String()
}

// TablePath is the full table published on one day.
func TablePath(table string, d civil.Date) string {
	return "exchangerates/tables/" + table + "/" + d.String()
}

// TableRangePath is every table published over r.
func TableRangePath(table string, r dates.Range) string {
	return "exchangerates/tables/" + table + "/" + r.Start.String() + "/" + r.End.String()
}

// Gold fetches the gold prices over r.
func Gold(ctx context.Context, f Fetcher, r dates.Range) ([]GoldPrice, error) {
	var out []GoldPrice
	if err := f.Fetch(ctx, GoldRangePath(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GoldOn fetches the gold price of a single day.
func GoldOn(ctx context.Context, f Fetcher, d civil.Date) (GoldPrice, error) {
	var out []GoldPrice
	if err := f.Fetch(ctx, GoldPath(d), &out); err != nil {
		return GoldPrice{}, err
	}
	if len(out) == 0 {
		return GoldPrice{}, &FetchError{Kind: KindTransport, Path: GoldPath(d), Message: "empty gold price list"}
	}
	return out[0], nil
}

// Rates fetches a currency's series from table over r.
func Rates(ctx context.Context, f Fetcher, table, code string, r dates.Range) (RateSeries, error) {
	var out RateSeries
	err := f.Fetch(ctx, RateRangePath(table, code, r), &out)
	return out, err
}

// RateOn fetches a currency's rate from table on one day.
func RateOn(ctx context.Context, f Fetcher, table, code string, d civil.Date) (RateSeries, error) {
	var out RateSeries
	err := f.Fetch(ctx, RatePath(table, code, d), &out)
	return out, err
}

// Tables fetches every table published over r.
func Tables(ctx context.Context, f Fetcher, table string, r dates.Range) ([]Table, error) {
	var out []Table
	if err := f.Fetch(ctx, TableRangePath(table, r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TableOn fetches the table published on d.
func TableOn(ctx context.Context, f Fetcher, table string, d civil.Date) (Table, error) {
	var out []Table
	if err := f.Fetch(ctx, TablePath(table, d), &out); err != nil {
		return Table{}, err
	}
	if len(out) == 0 {
		return Table{}, &FetchError{Kind: KindTransport, Path: TablePath(table, d), Message: "empty table list"}
	}
	return out[0], nil
}
