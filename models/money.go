package models

import "github.com/shopspring/decimal"

func init() {
	// The backend reads prices and revenue as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
