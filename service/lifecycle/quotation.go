package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"equiprent.GO/model/entity"
	"equiprent.GO/service/ledger"
)

// CreateQuotation adds a new quotation to the snapshot. ModePermit issues
// the document as a material-release permit: stock is deducted now and the
// quotation is marked StockCommitted.
func CreateQuotation(s entity.AppData, in QuotationInput, mode CreateMode, now time.Time) (entity.AppData, entity.Quotation, error) {
	if err := validateCustomer(in.Customer); err != nil {
		return s, entity.Quotation{}, err
	}
	lines, err := buildLines(s.Items, in.Lines, now)
	if err != nil {
		return s, entity.Quotation{}, err
	}

	q := entity.Quotation{
		ID:              uuid.NewString(),
		CustomerName:    in.Customer.Name,
		CustomerPhone:   in.Customer.Phone,
		CustomerAddress: in.Customer.Address,
		Items:           lines,
		Date:            now,
		Notes:           in.Notes,
		DiscountValue:   in.DiscountValue,
		DiscountType:    discountTypeOrFixed(in.DiscountType),
		SecurityDeposit: in.SecurityDeposit,
		Status:          entity.QuotationPending,
	}

	out := s
	if mode == ModePermit {
		q.Status = entity.QuotationPermit
		q.StockCommitted = true
		out.Items = ledger.Apply(out.Items, q.Items, ledger.Deduct)
	}
	out.Quotations = append(slices.Clone(s.Quotations), q)
	return out, q, nil
}

// IssuePermit escalates a pending quotation to a material-release permit,
// deducting the quoted quantities from inventory. Re-issuing on a
// quotation that already left pending is rejected, which also guards the
// one-time-deduction invariant against double invocation.
func IssuePermit(s entity.AppData, quoteID string) (entity.AppData, error) {
	idx, err := findQuotation(s, quoteID)
	if err != nil {
		return s, err
	}
	q := s.Quotations[idx]
	if q.Status != entity.QuotationPending {
		return s, fmt.Errorf("%w: quotation %s is %s, want pending", ErrInvalidTransition, quoteID, q.Status)
	}

	q.Status = entity.QuotationPermit
	q.StockCommitted = true

	out := s
	out.Items = ledger.Apply(out.Items, q.Items, ledger.Deduct)
	out.Quotations = slices.Clone(s.Quotations)
	out.Quotations[idx] = q
	return out, nil
}

// ArchiveQuotation removes a quotation from the snapshot. A permit's
// committed stock is handed back to inventory; pending and converted
// quotations never held stock (the converted one's stock belongs to the
// rental now), so their removal carries no inventory effect.
func ArchiveQuotation(s entity.AppData, quoteID string) (entity.AppData, error) {
	idx, err := findQuotation(s, quoteID)
	if err != nil {
		return s, err
	}
	q := s.Quotations[idx]

	out := s
	if q.Status == entity.QuotationPermit && q.StockCommitted {
		out.Items = ledger.Apply(out.Items, q.Items, ledger.Restore)
	}
	out.Quotations = slices.Delete(slices.Clone(s.Quotations), idx, idx+1)
	return out, nil
}

// DeleteQuotation removes a quotation permanently. Stock semantics are
// identical to ArchiveQuotation: both unwind a permit's commitment.
func DeleteQuotation(s entity.AppData, quoteID string) (entity.AppData, error) {
	return ArchiveQuotation(s, quoteID)
}

func discountTypeOrFixed(t entity.DiscountType) entity.DiscountType {
	if t == entity.DiscountPercentage {
		return t
	}
	return entity.DiscountFixed
}
