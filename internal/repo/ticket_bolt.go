package repo

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

var ticketsBucket = []byte("tickets")

// BoltTicketRepository stores each ticket as a JSON document with its line
// snapshots embedded.
type BoltTicketRepository struct {
	db *bolt.DB
}

func NewBoltTicketRepository(db *bolt.DB) (*BoltTicketRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(ticketsBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tickets bucket: %w", err)
	}
	return &BoltTicketRepository{db: db}, nil
}

func (r *BoltTicketRepository) Create(t models.Ticket) (models.Ticket, error) {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(ticketsBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		t.ID = int(seq)
		doc, err := json.Marshal(t)
		if err != nil {
			return err
		}
		return b.Put(itob(t.ID), doc)
	})
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to insert ticket: %w", err)
	}
	return t, nil
}

func (r *BoltTicketRepository) GetAll() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(ticketsBucket).ForEach(func(_, doc []byte) error {
			var t models.Ticket
			if err := json.Unmarshal(doc, &t); err != nil {
				return err
			}
			tickets = append(tickets, t)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	return tickets, nil
}
