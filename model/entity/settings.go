package entity

type Currency string

const (
	CurrencySAR Currency = "SAR"
	CurrencyEGP Currency = "EGP"
)

// RentalSystem is the billing cadence applied per line.
type RentalSystem string

const (
	RentalWeekly  RentalSystem = "weekly"
	RentalMonthly RentalSystem = "monthly"
)

// SystemSettings carries the billing cadence and the contract-number
// sequence counter. The counter advances with every allocation; gaps are
// acceptable, reuse is not.
type SystemSettings struct {
	Currency           Currency     `json:"currency"`
	RentalSystem       RentalSystem `json:"rental_system"`
	NextContractNumber int          `json:"next_contract_number"`
}
