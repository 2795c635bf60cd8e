package cart

import "github.com/shopspring/decimal"

type Order struct {
	ID    string
	Paid  decimal.Decimal
	Count int
}
