package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

// PostgresTicketRepository stores tickets in a tickets table plus a
// ticket_lines table holding the sale-time snapshots.
type PostgresTicketRepository struct {
	db *sql.DB
}

func NewPostgresTicketRepository(db *sql.DB) *PostgresTicketRepository {
	return &PostgresTicketRepository{db: db}
}

func (r *PostgresTicketRepository) Create(t models.Ticket) (models.Ticket, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO tickets (date, total) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, t.Date, t.Total).Scan(&t.ID); err != nil {
		return models.Ticket{}, fmt.Errorf("failed to insert ticket: %w", err)
	}

	lineQuery := `INSERT INTO ticket_lines (ticket_id, product_id, name, type, unit_price, quantity)
	              VALUES ($1, $2, $3, $4, $5, $6)`
	for _, l := range t.Lines {
		if _, err := tx.ExecContext(ctx, lineQuery, t.ID, l.ProductID, l.Name, l.Type, l.UnitPrice, l.Quantity); err != nil {
			return models.Ticket{}, fmt.Errorf("failed to insert ticket line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Ticket{}, fmt.Errorf("failed to commit ticket: %w", err)
	}
	return t, nil
}

func (r *PostgresTicketRepository) GetAll() ([]models.Ticket, error) {
	query := `
		SELECT t.id, t.date, t.total, l.product_id, l.name, l.type, l.unit_price, l.quantity
		FROM tickets t
		JOIN ticket_lines l ON l.ticket_id = t.id
		ORDER BY t.id, l.id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var (
			id    int
			date  sql.NullTime
			total float64
			line  models.TicketLine
		)
		if err := rows.Scan(&id, &date, &total, &line.ProductID, &line.Name, &line.Type, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan ticket line: %w", err)
		}
		if len(tickets) == 0 || tickets[len(tickets)-1].ID != id {
			tickets = append(tickets, models.Ticket{ID: id, Date: date.Time, Total: total})
		}
		last := &tickets[len(tickets)-1]
		last.Lines = append(last.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}
	return tickets, nil
}
