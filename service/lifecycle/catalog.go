package lifecycle

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"equiprent.GO/model/entity"
)

// ItemInput is the payload for creating or editing a catalog item.
type ItemInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	RatePerUnit  float64 `json:"rate_per_unit"`
	AvailableQty int     `json:"available_qty"`
}

// CreateItem adds a catalog entry.
func CreateItem(s entity.AppData, in ItemInput) (entity.AppData, entity.Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return s, entity.Item{}, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if in.AvailableQty < 0 {
		return s, entity.Item{}, fmt.Errorf("%w: available quantity must not be negative", ErrValidation)
	}
	item := entity.Item{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Category:     in.Category,
		RatePerUnit:  in.RatePerUnit,
		AvailableQty: in.AvailableQty,
	}
	out := s
	out.Items = append(slices.Clone(s.Items), item)
	return out, item, nil
}

// UpdateItem edits a catalog entry. Rate changes do not propagate to
// existing documents; their lines carry the rate snapshotted at creation.
func UpdateItem(s entity.AppData, itemID string, in ItemInput) (entity.AppData, error) {
	idx := slices.IndexFunc(s.Items, func(it entity.Item) bool { return it.ID == itemID })
	if idx < 0 {
		return s, fmt.Errorf("%w: inventory item %s", ErrNotFound, itemID)
	}
	if strings.TrimSpace(in.Name) == "" {
		return s, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if in.AvailableQty < 0 {
		return s, fmt.Errorf("%w: available quantity must not be negative", ErrValidation)
	}
	item := s.Items[idx]
	item.Name = in.Name
	item.Category = in.Category
	item.RatePerUnit = in.RatePerUnit
	item.AvailableQty = in.AvailableQty

	out := s
	out.Items = slices.Clone(s.Items)
	out.Items[idx] = item
	return out, nil
}

// DeleteItem removes a catalog entry. Documents referencing it stay valid
// and billable on their snapshotted rates; the ledger treats the dangling
// reference as a no-op from here on.
func DeleteItem(s entity.AppData, itemID string) (entity.AppData, error) {
	idx := slices.IndexFunc(s.Items, func(it entity.Item) bool { return it.ID == itemID })
	if idx < 0 {
		return s, fmt.Errorf("%w: inventory item %s", ErrNotFound, itemID)
	}
	out := s
	out.Items = slices.Delete(slices.Clone(s.Items), idx, idx+1)
	return out, nil
}

// ExpenseInput is the payload for recording an operating expense.
type ExpenseInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// AddExpense records an operating expense.
func AddExpense(s entity.AppData, in ExpenseInput, now time.Time) (entity.AppData, entity.Expense, error) {
	if strings.TrimSpace(in.Description) == "" {
		return s, entity.Expense{}, fmt.Errorf("%w: expense description is required", ErrValidation)
	}
	if in.Amount <= 0 {
		return s, entity.Expense{}, fmt.Errorf("%w: expense amount must be positive", ErrValidation)
	}
	exp := entity.Expense{
		ID:          uuid.NewString(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        now,
		Category:    in.Category,
	}
	out := s
	out.Expenses = append(slices.Clone(s.Expenses), exp)
	return out, exp, nil
}

// DeleteExpense removes an expense entry.
func DeleteExpense(s entity.AppData, expenseID string) (entity.AppData, error) {
	idx := slices.IndexFunc(s.Expenses, func(e entity.Expense) bool { return e.ID == expenseID })
	if idx < 0 {
		return s, fmt.Errorf("%w: expense %s", ErrNotFound, expenseID)
	}
	out := s
	out.Expenses = slices.Delete(slices.Clone(s.Expenses), idx, idx+1)
	return out, nil
}

// UpdateSettings replaces currency and billing cadence. The contract
// counter can only move forward; lowering it would risk number reuse.
func UpdateSettings(s entity.AppData, settings entity.SystemSettings) (entity.AppData, error) {
	switch settings.RentalSystem {
	case entity.RentalWeekly, entity.RentalMonthly:
	default:
		return s, fmt.Errorf("%w: unknown rental system %q", ErrValidation, settings.RentalSystem)
	}
	if settings.NextContractNumber < s.SystemSettings.NextContractNumber {
		return s, fmt.Errorf("%w: contract counter cannot move backwards", ErrValidation)
	}
	out := s
	out.SystemSettings = settings
	return out, nil
}
