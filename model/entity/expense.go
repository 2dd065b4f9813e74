package entity

import "time"

// Expense is a standalone operating cost entry, outside the document
// lifecycle.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}
