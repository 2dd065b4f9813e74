// Package lifecycle is the document state machine. It owns every
// transition of quotations (pending → permit → converted), rentals
// (active → closed, archive/restore) and the stock side effect each
// transition carries.
//
// Every operation takes an AppData snapshot and returns a new one.
// Rejections happen before any mutation; no operation partially applies.
// Stock effects go through service/ledger and are keyed on the document's
// StockCommitted flag, so any given quotation is deducted from inventory
// exactly once over its lifetime no matter which path commits it.
package lifecycle

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"equiprent.GO/model/entity"
)

// CreateMode selects how a new quotation document enters the lifecycle.
type CreateMode string

const (
	// ModeQuotation creates a plain pending estimate, no stock effect.
	ModeQuotation CreateMode = "quotation"
	// ModePermit creates a material-release permit directly, deducting
	// stock immediately.
	ModePermit CreateMode = "permit"
)

// LineInput selects one catalog item for a new document. Rate overrides
// the catalog rate when > 0 (negotiated pricing); otherwise the catalog
// rate is snapshotted.
type LineInput struct {
	ItemID string  `json:"item_id"`
	Qty    int     `json:"qty"`
	Rate   float64 `json:"rate,omitempty"`
}

// CustomerInput carries the customer identity fields shared by both
// document kinds.
type CustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// QuotationInput is the payload for creating a quotation or direct permit.
type QuotationInput struct {
	Customer        CustomerInput       `json:"customer"`
	Lines           []LineInput         `json:"lines"`
	Notes           string              `json:"notes"`
	DiscountValue   float64             `json:"discount_value"`
	DiscountType    entity.DiscountType `json:"discount_type"`
	SecurityDeposit float64             `json:"security_deposit"`
}

// RentalInput is the payload for creating a rental contract directly.
type RentalInput struct {
	Customer        CustomerInput       `json:"customer"`
	Lines           []LineInput         `json:"lines"`
	Notes           string              `json:"notes"`
	DiscountValue   float64             `json:"discount_value"`
	DiscountType    entity.DiscountType `json:"discount_type"`
	SecurityDeposit float64             `json:"security_deposit"`
	OpeningBalance  float64             `json:"opening_balance"`
}

// buildLines resolves inputs against the catalog, snapshotting the rate
// and stamping each line with its own start date.
func buildLines(items []entity.Item, lines []LineInput, now time.Time) ([]entity.LineItem, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", ErrValidation)
	}
	out := make([]entity.LineItem, 0, len(lines))
	for _, in := range lines {
		if in.Qty < 1 {
			return nil, fmt.Errorf("%w: line quantity must be at least 1", ErrValidation)
		}
		idx := slices.IndexFunc(items, func(it entity.Item) bool { return it.ID == in.ItemID })
		if idx < 0 {
			return nil, fmt.Errorf("%w: unknown inventory item %q", ErrValidation, in.ItemID)
		}
		item := items[idx]
		rate := item.RatePerUnit
		if in.Rate > 0 {
			rate = in.Rate
		}
		out = append(out, entity.LineItem{
			ID:          uuid.NewString(),
			ItemID:      item.ID,
			Name:        item.Name,
			OriginalQty: in.Qty,
			ReturnedQty: 0,
			CurrentQty:  in.Qty,
			Rate:        rate,
			StartDate:   now,
		})
	}
	return out, nil
}

func validateCustomer(c CustomerInput) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	return nil
}

func findQuotation(s entity.AppData, id string) (int, error) {
	idx := slices.IndexFunc(s.Quotations, func(q entity.Quotation) bool { return q.ID == id })
	if idx < 0 {
		return 0, fmt.Errorf("%w: quotation %s", ErrNotFound, id)
	}
	return idx, nil
}

func findRental(s entity.AppData, id string) (int, error) {
	idx := slices.IndexFunc(s.Rentals, func(r entity.Rental) bool { return r.ID == id })
	if idx < 0 {
		return 0, fmt.Errorf("%w: rental %s", ErrNotFound, id)
	}
	return idx, nil
}

func findArchived(s entity.AppData, id string) (int, error) {
	idx := slices.IndexFunc(s.ArchivedRentals, func(r entity.Rental) bool { return r.ID == id })
	if idx < 0 {
		return 0, fmt.Errorf("%w: archived rental %s", ErrNotFound, id)
	}
	return idx, nil
}
