package repo

import (
	"github.com/rogerio-castellano/flowershop/internal/models"
)

// InMemoryTicketRepository is an in-memory implementation of TicketRepository.
type InMemoryTicketRepository struct {
	tickets []models.Ticket
	nextID  int
}

// NewInMemoryTicketRepository creates a new instance of InMemoryTicketRepository.
func NewInMemoryTicketRepository() *InMemoryTicketRepository {
	return &InMemoryTicketRepository{tickets: []models.Ticket{}, nextID: 1}
}

// Create appends a ticket and assigns its id.
func (r *InMemoryTicketRepository) Create(ticket models.Ticket) (models.Ticket, error) {
	ticket.ID = r.nextID
	r.nextID++
	lines := make([]models.TicketLine, len(ticket.Lines))
	copy(lines, ticket.Lines)
	ticket.Lines = lines
	r.tickets = append(r.tickets, ticket)
	return ticket, nil
}

// GetAll retrieves all tickets in insertion order.
func (r *InMemoryTicketRepository) GetAll() ([]models.Ticket, error) {
	out := make([]models.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

// Clear removes all tickets. Test helper.
func (r *InMemoryTicketRepository) Clear() {
	r.tickets = []models.Ticket{}
	r.nextID = 1
}
