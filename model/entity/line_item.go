package entity

import "time"

// LineItem is one item entry inside a quotation or rental. Rate is
// snapshotted at document creation and does not follow later catalog
// edits. StartDate is per line: items added mid-contract bill from their
// own start, not the document's.
type LineItem struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	Name        string    `json:"name"`
	OriginalQty int       `json:"original_qty"`
	ReturnedQty int       `json:"returned_qty"`
	CurrentQty  int       `json:"current_qty"`
	Rate        float64   `json:"rate"`
	StartDate   time.Time `json:"start_date"`
}

// Payment is one received amount. Append-only.
type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// ReturnLog records one partial return. Append-only.
type ReturnLog struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	ItemName string    `json:"item_name"`
	Qty      int       `json:"qty"`
	Date     time.Time `json:"date"`
}
