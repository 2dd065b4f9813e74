package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"equiprent.GO/model/entity"
)

// Settlement is the financial snapshot of one document at a point in time.
// Every term is rounded independently before summation so repeated display
// of the same document never drifts by accumulated fractions.
// Remaining is signed: negative means the customer is in credit.
type Settlement struct {
	Subtotal       float64 `json:"subtotal"`
	Discount       float64 `json:"discount"`
	Deposit        float64 `json:"deposit"`
	OpeningBalance float64 `json:"opening_balance"`
	TotalDue       float64 `json:"total_due"`
	TotalPaid      float64 `json:"total_paid"`
	Remaining      float64 `json:"remaining"`
}

// Settle computes a rental's settlement as of now. Each line accrues
// CurrentQty × Rate × Units from its own start date; returned quantity
// never re-bills. Closed rentals keep accruing by elapsed time; closing
// only freezes the status, not the meter.
func Settle(r entity.Rental, system entity.RentalSystem, now time.Time) Settlement {
	subtotal := decimal.Zero
	for _, line := range r.Items {
		units := Units(line.StartDate, now, system)
		lineTotal := decimal.NewFromFloat(line.Rate).
			Mul(decimal.NewFromInt(int64(line.CurrentQty))).
			Mul(decimal.NewFromInt(int64(units)))
		subtotal = subtotal.Add(lineTotal)
	}
	return settle(subtotal, r.DiscountValue, r.DiscountType, r.SecurityDeposit, r.OpeningBalance, r.Payments)
}

// SettleQuotation prices a quotation as a flat point estimate: quantity
// times rate, no elapsed-time multiplier. Quotations are not yet
// time-bound.
func SettleQuotation(q entity.Quotation) Settlement {
	subtotal := decimal.Zero
	for _, line := range q.Items {
		subtotal = subtotal.Add(decimal.NewFromFloat(line.Rate).
			Mul(decimal.NewFromInt(int64(line.CurrentQty))))
	}
	return settle(subtotal, q.DiscountValue, q.DiscountType, q.SecurityDeposit, 0, nil)
}

func settle(subtotal decimal.Decimal, discountValue float64, discountType entity.DiscountType, deposit, opening float64, payments []entity.Payment) Settlement {
	discount := decimal.NewFromFloat(discountValue)
	if discountType == entity.DiscountPercentage {
		discount = subtotal.Mul(discount).Div(decimal.NewFromInt(100))
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(decimal.NewFromFloat(p.Amount))
	}

	roundedSubtotal := subtotal.Round(0)
	roundedDiscount := discount.Round(0)
	roundedDeposit := decimal.NewFromFloat(deposit).Round(0)
	roundedOpening := decimal.NewFromFloat(opening).Round(0)
	totalDue := roundedSubtotal.Sub(roundedDiscount).Add(roundedOpening).Add(roundedDeposit)
	totalPaid := paid.Round(0)

	return Settlement{
		Subtotal:       roundedSubtotal.InexactFloat64(),
		Discount:       roundedDiscount.InexactFloat64(),
		Deposit:        roundedDeposit.InexactFloat64(),
		OpeningBalance: roundedOpening.InexactFloat64(),
		TotalDue:       totalDue.InexactFloat64(),
		TotalPaid:      totalPaid.InexactFloat64(),
		Remaining:      totalDue.Sub(totalPaid).InexactFloat64(),
	}
}
