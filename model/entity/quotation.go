package entity

import "time"

type QuotationStatus string

const (
	QuotationPending   QuotationStatus = "pending"
	QuotationPermit    QuotationStatus = "permit"
	QuotationConverted QuotationStatus = "converted"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// Quotation is a priced estimate. Its status track is forward-only:
// pending → permit → converted. IDs are random (uuid), unlike rental
// contract numbers which come from the sequence allocator.
//
// StockCommitted marks that this document's lines have been deducted from
// inventory. It is set exactly once, on the first transition that commits
// the material to leaving the warehouse, and is the only guard the ledger
// side effects consult, not the status at the call site.
type Quotation struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	Items           []LineItem      `json:"items"`
	Date            time.Time       `json:"date"`
	Notes           string          `json:"notes"`
	DiscountValue   float64         `json:"discount_value"`
	DiscountType    DiscountType    `json:"discount_type"`
	SecurityDeposit float64         `json:"security_deposit"`
	Status          QuotationStatus `json:"status"`
	StockCommitted  bool            `json:"stock_committed"`
}
