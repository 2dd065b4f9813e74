package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"equiprent.GO/model/entity"
	"equiprent.GO/service/ledger"
)

// CreateRental opens a rental contract directly, without a preceding
// quotation. Stock for every line is deducted immediately and the contract
// number is allocated in the same snapshot replacement.
func CreateRental(s entity.AppData, in RentalInput, now time.Time) (entity.AppData, entity.Rental, error) {
	if err := validateCustomer(in.Customer); err != nil {
		return s, entity.Rental{}, err
	}
	lines, err := buildLines(s.Items, in.Lines, now)
	if err != nil {
		return s, entity.Rental{}, err
	}

	contractID, settings := allocateContractNumber(s.SystemSettings)
	r := entity.Rental{
		ID:              contractID,
		CustomerName:    in.Customer.Name,
		CustomerPhone:   in.Customer.Phone,
		CustomerAddress: in.Customer.Address,
		Items:           lines,
		StartDate:       now,
		Status:          entity.RentalActive,
		DiscountValue:   in.DiscountValue,
		DiscountType:    discountTypeOrFixed(in.DiscountType),
		SecurityDeposit: in.SecurityDeposit,
		OpeningBalance:  in.OpeningBalance,
		Payments:        []entity.Payment{},
		Notes:           in.Notes,
	}

	out := s
	out.SystemSettings = settings
	out.Items = ledger.Apply(out.Items, r.Items, ledger.Deduct)
	out.Rentals = append([]entity.Rental{r}, s.Rentals...)
	return out, r, nil
}

// ArchiveRental moves a rental to the archive collection, handing every
// still-out quantity back to inventory.
func ArchiveRental(s entity.AppData, rentalID string) (entity.AppData, error) {
	idx, err := findRental(s, rentalID)
	if err != nil {
		return s, err
	}
	r := s.Rentals[idx]

	out := s
	out.Items = ledger.Apply(out.Items, r.Items, ledger.Restore)
	out.Rentals = slices.Delete(slices.Clone(s.Rentals), idx, idx+1)
	out.ArchivedRentals = append([]entity.Rental{r}, s.ArchivedRentals...)
	return out, nil
}

// RestoreRental moves an archived rental back to the active collection,
// deducting its remaining quantities again: the material is considered
// back out of the warehouse.
func RestoreRental(s entity.AppData, rentalID string) (entity.AppData, error) {
	idx, err := findArchived(s, rentalID)
	if err != nil {
		return s, err
	}
	r := s.ArchivedRentals[idx]

	out := s
	out.Items = ledger.Apply(out.Items, r.Items, ledger.Deduct)
	out.ArchivedRentals = slices.Delete(slices.Clone(s.ArchivedRentals), idx, idx+1)
	out.Rentals = append([]entity.Rental{r}, s.Rentals...)
	return out, nil
}

// DeleteArchivedRental removes an archived rental permanently. Its stock
// was already restored when it was archived.
func DeleteArchivedRental(s entity.AppData, rentalID string) (entity.AppData, error) {
	idx, err := findArchived(s, rentalID)
	if err != nil {
		return s, err
	}
	out := s
	out.ArchivedRentals = slices.Delete(slices.Clone(s.ArchivedRentals), idx, idx+1)
	return out, nil
}

// AddItem appends a fresh line to an active rental, deducting the quantity
// from inventory. The line bills from its own start date at the catalog's
// current rate.
func AddItem(s entity.AppData, rentalID, itemID string, qty int, now time.Time) (entity.AppData, error) {
	idx, err := findRental(s, rentalID)
	if err != nil {
		return s, err
	}
	r := s.Rentals[idx]
	if r.Status != entity.RentalActive {
		return s, fmt.Errorf("%w: rental %s is %s, want active", ErrInvalidTransition, rentalID, r.Status)
	}
	if qty < 1 {
		return s, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	itemIdx := slices.IndexFunc(s.Items, func(it entity.Item) bool { return it.ID == itemID })
	if itemIdx < 0 {
		return s, fmt.Errorf("%w: inventory item %s", ErrNotFound, itemID)
	}
	item := s.Items[itemIdx]

	line := entity.LineItem{
		ID:          uuid.NewString(),
		ItemID:      item.ID,
		Name:        item.Name,
		OriginalQty: qty,
		ReturnedQty: 0,
		CurrentQty:  qty,
		Rate:        item.RatePerUnit,
		StartDate:   now,
	}

	r.Items = append(slices.Clone(r.Items), line)

	out := s
	out.Items = ledger.DeductQty(out.Items, itemID, qty)
	out.Rentals = slices.Clone(s.Rentals)
	out.Rentals[idx] = r
	return out, nil
}

// ReturnItem records a partial return of one rental line. The amount is
// clamped to the line's current quantity; the clamped amount goes back to
// inventory and a return-log entry is appended. The line keeps billing on
// its reduced quantity from here on.
func ReturnItem(s entity.AppData, rentalID, lineID string, qty int, now time.Time) (entity.AppData, error) {
	idx, err := findRental(s, rentalID)
	if err != nil {
		return s, err
	}
	r := s.Rentals[idx]
	if qty < 1 {
		return s, fmt.Errorf("%w: return quantity must be at least 1", ErrValidation)
	}

	lineIdx := slices.IndexFunc(r.Items, func(l entity.LineItem) bool { return l.ID == lineID })
	if lineIdx < 0 {
		return s, fmt.Errorf("%w: line %s on rental %s", ErrNotFound, lineID, rentalID)
	}
	line := r.Items[lineIdx]

	amount := qty
	if amount > line.CurrentQty {
		amount = line.CurrentQty
	}
	if amount == 0 {
		return s, fmt.Errorf("%w: line %s has no quantity left to return", ErrValidation, lineID)
	}

	line.ReturnedQty += amount
	line.CurrentQty -= amount

	r.Items = slices.Clone(r.Items)
	r.Items[lineIdx] = line
	r.ReturnLogs = append(slices.Clone(r.ReturnLogs), entity.ReturnLog{
		ID:       uuid.NewString(),
		ItemID:   line.ItemID,
		ItemName: line.Name,
		Qty:      amount,
		Date:     now,
	})

	out := s
	out.Items = ledger.RestoreQty(out.Items, line.ItemID, amount)
	out.Rentals = slices.Clone(s.Rentals)
	out.Rentals[idx] = r
	return out, nil
}

// AddPayment appends a received amount to the rental's payment history.
// Overpayment is allowed and shows up as negative remaining balance.
func AddPayment(s entity.AppData, rentalID string, amount float64, now time.Time) (entity.AppData, error) {
	idx, err := findRental(s, rentalID)
	if err != nil {
		return s, err
	}
	if amount <= 0 {
		return s, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}
	r := s.Rentals[idx]
	r.Payments = append(slices.Clone(r.Payments), entity.Payment{
		ID:     uuid.NewString(),
		Amount: amount,
		Date:   now,
	})

	out := s
	out.Rentals = slices.Clone(s.Rentals)
	out.Rentals[idx] = r
	return out, nil
}

// ApplyDiscount replaces the rental's discount in place.
func ApplyDiscount(s entity.AppData, rentalID string, value float64, kind entity.DiscountType) (entity.AppData, error) {
	idx, err := findRental(s, rentalID)
	if err != nil {
		return s, err
	}
	if value < 0 {
		return s, fmt.Errorf("%w: discount value must not be negative", ErrValidation)
	}
	r := s.Rentals[idx]
	r.DiscountValue = value
	r.DiscountType = discountTypeOrFixed(kind)

	out := s
	out.Rentals = slices.Clone(s.Rentals)
	out.Rentals[idx] = r
	return out, nil
}

// Close flips an active rental to closed. No stock effect, and the
// financial history is untouched; time-based accrual keeps running on
// unreturned lines (a closed-but-unreturned item keeps charging).
func Close(s entity.AppData, rentalID string) (entity.AppData, error) {
	idx, err := findRental(s, rentalID)
	if err != nil {
		return s, err
	}
	r := s.Rentals[idx]
	if r.Status != entity.RentalActive {
		return s, fmt.Errorf("%w: rental %s is already %s", ErrInvalidTransition, rentalID, r.Status)
	}
	r.Status = entity.RentalClosed

	out := s
	out.Rentals = slices.Clone(s.Rentals)
	out.Rentals[idx] = r
	return out, nil
}
