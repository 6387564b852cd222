package models

import "github.com/shopspring/decimal"

// Analytics is the aggregate shown on the sales tab. The zero value is the
// default shown when the backend cannot be reached.
type Analytics struct {
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}
