package repo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

func openBoltRepos(t *testing.T) (*BoltProductRepository, *BoltTicketRepository) {
	t.Helper()
	database, err := bolt.Open(filepath.Join(t.TempDir(), "flowershop.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	products, err := NewBoltProductRepository(database)
	require.NoError(t, err)
	tickets, err := NewBoltTicketRepository(database)
	require.NoError(t, err)
	return products, tickets
}

func TestBoltProductRepository_RoundTrip(t *testing.T) {
	products, _ := openBoltRepos(t)

	created, err := products.Create(models.NewFlower("Rosa", 3, 2.5, "Roja"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	fetched, err := products.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	_, err = products.GetByID(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestBoltProductRepository_UpdateAndDelete(t *testing.T) {
	products, _ := openBoltRepos(t)

	created, err := products.Create(models.NewTree("Pino", 1, 30.0, 3.0))
	require.NoError(t, err)

	created.Quantity = 8
	created.Price = 25.0
	updated, err := products.Update(created)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, 3.0, updated.Height, "embedded attribute survives updates")

	require.NoError(t, products.Delete(created.ID))
	assert.ErrorIs(t, products.Delete(created.ID), ErrProductNotFound)
	_, err = products.Update(created)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestBoltProductRepository_SeedAndGetByType(t *testing.T) {
	products, _ := openBoltRepos(t)
	require.NoError(t, products.SeedCatalog())

	all, err := products.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 13)

	flowers, err := products.GetByType(models.Flower)
	require.NoError(t, err)
	assert.Len(t, flowers, 5)

	last, err := products.GetLast()
	require.NoError(t, err)
	assert.Equal(t, 13, last.ID)
}

func TestBoltTicketRepository_AppendOnly(t *testing.T) {
	_, tickets := openBoltRepos(t)

	ticket := models.Ticket{
		Date: time.Now().UTC().Truncate(time.Second),
		Lines: []models.TicketLine{
			{ProductID: 1, Name: "Rosa", Type: models.Flower, UnitPrice: 2.5, Quantity: 2},
			{ProductID: 2, Name: "Pino", Type: models.Tree, UnitPrice: 30.0, Quantity: 1},
		},
	}
	ticket.Total = ticket.ComputeTotal()

	created, err := tickets.Create(ticket)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	all, err := tickets.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.Lines, all[0].Lines)
	assert.Equal(t, 35.0, all[0].Total)
	assert.True(t, ticket.Date.Equal(all[0].Date))
}
