package entity

import "time"

type RentalStatus string

const (
	RentalActive RentalStatus = "active"
	RentalClosed RentalStatus = "closed"
)

// Rental is a billable, time-accruing contract. ID is the string form of
// an allocated contract number. Payments and ReturnLogs are append-only.
type Rental struct {
	ID              string       `json:"id"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address,omitempty"`
	Items           []LineItem   `json:"items"`
	ReturnLogs      []ReturnLog  `json:"return_logs,omitempty"`
	StartDate       time.Time    `json:"start_date"`
	Status          RentalStatus `json:"status"`
	DiscountValue   float64      `json:"discount_value"`
	DiscountType    DiscountType `json:"discount_type"`
	SecurityDeposit float64      `json:"security_deposit"`
	OpeningBalance  float64      `json:"opening_balance"`
	Payments        []Payment    `json:"payments"`
	Notes           string       `json:"notes"`
}
