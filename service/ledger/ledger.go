// Package ledger maintains the available quantity of every catalog item.
// All operations are pure: they take the item collection and return a new
// one, leaving the input untouched. Deduction clamps at zero instead of
// failing: physical stock judgement is left to the operator, and the
// workflow must never block on an inventory count mismatch.
package ledger

import "equiprent.GO/model/entity"

// Direction selects the stock effect of a batch application.
type Direction int

const (
	Deduct Direction = iota
	Restore
)

// DeductQty lowers an item's available quantity, flooring at zero.
// Unknown item ids are a no-op: the item may have been removed from the
// catalog after a document referencing it was created.
func DeductQty(items []entity.Item, itemID string, qty int) []entity.Item {
	return apply(items, itemID, func(avail int) int {
		if avail-qty < 0 {
			return 0
		}
		return avail - qty
	})
}

// RestoreQty raises an item's available quantity. No upper bound.
// Unknown item ids are a no-op.
func RestoreQty(items []entity.Item, itemID string, qty int) []entity.Item {
	return apply(items, itemID, func(avail int) int {
		return avail + qty
	})
}

// Apply runs one deduct or restore per document line, using each line's
// current quantity. Lines whose item id has no catalog match are skipped.
func Apply(items []entity.Item, lines []entity.LineItem, dir Direction) []entity.Item {
	out := items
	for _, line := range lines {
		if line.CurrentQty <= 0 {
			continue
		}
		switch dir {
		case Deduct:
			out = DeductQty(out, line.ItemID, line.CurrentQty)
		case Restore:
			out = RestoreQty(out, line.ItemID, line.CurrentQty)
		}
	}
	return out
}

func apply(items []entity.Item, itemID string, fn func(int) int) []entity.Item {
	out := make([]entity.Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == itemID {
			out[i].AvailableQty = fn(out[i].AvailableQty)
			break
		}
	}
	return out
}
