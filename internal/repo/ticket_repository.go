package repo

import (
	"github.com/rogerio-castellano/flowershop/internal/models"
)

// TicketRepository defines the persistence contract for sale tickets.
// Tickets are write-once and append-only: there is no update or delete.
type TicketRepository interface {
	// Create persists a ticket and returns it with the id assigned by the
	// backend. The ticket's Total must already equal ComputeTotal().
	Create(ticket models.Ticket) (models.Ticket, error)
	GetAll() ([]models.Ticket, error)
}
