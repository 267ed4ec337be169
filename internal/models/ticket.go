package models

import "time"

// TicketLine is a sale-time snapshot of one sold product. It captures the
// identity, type and unit price at the moment of the sale so later product
// mutations or deletions never change historical tickets.
type TicketLine struct {
	ProductID int         `json:"product_id"`
	Name      string      `json:"name"`
	Type      ProductType `json:"type"`
	UnitPrice float64     `json:"unit_price"`
	Quantity  int         `json:"quantity"`
}

// Ticket is an immutable record of one sale event. Total is derived from
// the lines; whenever a ticket is persisted Total must equal ComputeTotal().
type Ticket struct {
	ID    int          `json:"id"`
	Date  time.Time    `json:"date"`
	Lines []TicketLine `json:"lines"`
	Total float64      `json:"total"`
}

// ComputeTotal sums unit price times quantity over all lines.
func (t Ticket) ComputeTotal() float64 {
	var total float64
	for _, l := range t.Lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}
