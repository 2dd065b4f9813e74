package entity

// AppData is the whole application state. Every core operation takes a
// snapshot value and returns a new one; the store replaces the persisted
// blob wholesale on success. Nothing mutates a snapshot in place across an
// operation boundary.
type AppData struct {
	Items           []Item         `json:"items"`
	Rentals         []Rental       `json:"rentals"`
	Quotations      []Quotation    `json:"quotations"`
	ArchivedRentals []Rental       `json:"archived_rentals"`
	Expenses        []Expense      `json:"expenses"`
	SystemSettings  SystemSettings `json:"system_settings"`
}

// DefaultSettings is the state seeded on first run.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		Currency:           CurrencySAR,
		RentalSystem:       RentalWeekly,
		NextContractNumber: 1001,
	}
}
