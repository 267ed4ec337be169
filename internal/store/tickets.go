package store

import (
	"fmt"
	"log"
	"time"

	"github.com/rogerio-castellano/flowershop/internal/models"
	"github.com/rogerio-castellano/flowershop/internal/repo"
)

// LineRequest is one candidate line of a sale: a product and the desired
// quantity.
type LineRequest struct {
	ProductID int
	Quantity  int
}

// TicketManager orchestrates ticket creation: it validates every line
// against available stock, decrements atomically through the
// InventoryManager and persists the resulting ticket.
type TicketManager struct {
	inv     *InventoryManager
	tickets repo.TicketRepository
}

func NewTicketManager(inv *InventoryManager, tickets repo.TicketRepository) *TicketManager {
	return &TicketManager{inv: inv, tickets: tickets}
}

// CreateTicket commits a multi-line sale. The whole ticket is all-or-nothing:
// if any line requests more than the available stock, no quantity changes and
// no ticket is persisted. Validation, decrement and persistence run inside
// one critical section, so concurrent tickets can never drive stock negative
// and no reader observes an intermediate state.
func (m *TicketManager) CreateTicket(lines []LineRequest) (models.Ticket, error) {
	if len(lines) == 0 {
		return models.Ticket{}, &ValidationError{Field: "lines", Reason: "a ticket requires at least one line"}
	}

	m.inv.mu.Lock()
	defer m.inv.mu.Unlock()

	seen := make(map[int]bool, len(lines))
	products := make([]models.Product, len(lines))
	for i, l := range lines {
		if l.Quantity <= 0 {
			return models.Ticket{}, &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
		}
		if seen[l.ProductID] {
			return models.Ticket{}, &ValidationError{Field: "product_id", Reason: fmt.Sprintf("product %d appears more than once", l.ProductID)}
		}
		seen[l.ProductID] = true

		p, err := m.inv.products.GetByID(l.ProductID)
		if err != nil {
			return models.Ticket{}, err
		}
		if l.Quantity > p.Quantity {
			return models.Ticket{}, &InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: l.Quantity,
				Available: p.Quantity,
			}
		}
		products[i] = p
	}

	// Every line validated; decrement and persist each product. A failure
	// mid-commit restores the products already written before reporting it.
	ticket := models.Ticket{Date: time.Now().UTC()}
	for i, l := range lines {
		p := products[i]
		p.Quantity -= l.Quantity
		if _, err := m.inv.products.Update(p); err != nil {
			m.restock(lines[:i], products[:i])
			return models.Ticket{}, fmt.Errorf("failed to commit ticket line for product %d: %w", p.ID, err)
		}
		ticket.Lines = append(ticket.Lines, models.TicketLine{
			ProductID: p.ID,
			Name:      p.Name,
			Type:      p.Type,
			UnitPrice: p.Price,
			Quantity:  l.Quantity,
		})
	}
	ticket.Total = ticket.ComputeTotal()

	created, err := m.tickets.Create(ticket)
	if err != nil {
		m.restock(lines, products)
		return models.Ticket{}, fmt.Errorf("failed to persist ticket: %w", err)
	}
	return created, nil
}

// restock restores the pre-ticket quantity of products already decremented
// when a later step of the commit fails.
func (m *TicketManager) restock(lines []LineRequest, products []models.Product) {
	for i := range lines {
		if _, err := m.inv.products.Update(products[i]); err != nil {
			log.Printf("could not restore stock for product %d after failed ticket: %v", products[i].ID, err)
		}
	}
}

// Tickets returns every recorded ticket, oldest first. Reads take the
// inventory lock so they serialize against an in-flight ticket commit.
func (m *TicketManager) Tickets() ([]models.Ticket, error) {
	m.inv.mu.RLock()
	defer m.inv.mu.RUnlock()

	tickets, err := m.tickets.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	if len(tickets) == 0 {
		return nil, ErrNoTickets
	}
	return tickets, nil
}

// ShopBenefits returns the aggregate revenue over all tickets.
func (m *TicketManager) ShopBenefits() (float64, error) {
	tickets, err := m.Tickets()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, t := range tickets {
		total += t.Total
	}
	return total, nil
}
