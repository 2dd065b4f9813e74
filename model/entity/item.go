package entity

// Item is one catalog entry in the shared inventory pool. AvailableQty is
// owned by the stock ledger and must not be mutated directly.
type Item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	RatePerUnit  float64 `json:"rate_per_unit"`
	AvailableQty int     `json:"available_qty"`
}
