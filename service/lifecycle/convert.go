package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"equiprent.GO/model/entity"
	"equiprent.GO/service/ledger"
)

// Convert turns a quotation into an active rental contract. The contract
// gets the next allocated number, copies of the quotation's lines with
// start dates refreshed to now (billing restarts under the contract), and
// the quotation's discount and deposit. The source quotation becomes
// converted, which is terminal.
//
// Stock: a pending quotation is deducted here, a permit was already
// deducted when issued. StockCommitted decides, so no path deducts twice.
func Convert(s entity.AppData, quoteID string, now time.Time) (entity.AppData, entity.Rental, error) {
	idx, err := findQuotation(s, quoteID)
	if err != nil {
		return s, entity.Rental{}, err
	}
	q := s.Quotations[idx]
	if q.Status == entity.QuotationConverted {
		return s, entity.Rental{}, fmt.Errorf("%w: quotation %s already converted", ErrInvalidTransition, quoteID)
	}

	contractID, settings := allocateContractNumber(s.SystemSettings)

	lines := slices.Clone(q.Items)
	for i := range lines {
		lines[i].StartDate = now
	}

	r := entity.Rental{
		ID:              contractID,
		CustomerName:    q.CustomerName,
		CustomerPhone:   q.CustomerPhone,
		CustomerAddress: q.CustomerAddress,
		Items:           lines,
		StartDate:       now,
		Status:          entity.RentalActive,
		DiscountValue:   q.DiscountValue,
		DiscountType:    q.DiscountType,
		SecurityDeposit: q.SecurityDeposit,
		OpeningBalance:  0,
		Payments:        []entity.Payment{},
		Notes:           q.Notes,
	}
	if r.Notes == "" {
		r.Notes = fmt.Sprintf("converted from quotation %s", q.ID)
	}

	out := s
	if !q.StockCommitted {
		out.Items = ledger.Apply(out.Items, r.Items, ledger.Deduct)
	}

	q.Status = entity.QuotationConverted
	q.StockCommitted = true

	out.SystemSettings = settings
	out.Rentals = append([]entity.Rental{r}, s.Rentals...)
	out.Quotations = slices.Clone(s.Quotations)
	out.Quotations[idx] = q
	return out, r, nil
}
