package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

func TestInMemoryProductRepository_RoundTrip(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, err := r.Create(models.NewFlower("Rosa", 3, 2.5, "Roja"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	fetched, err := r.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	// Reading twice without intervening writes yields identical values.
	again, err := r.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, fetched, again)
}

func TestInMemoryProductRepository_IDsDeriveFromLast(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.GetLast()
	assert.ErrorIs(t, err, ErrProductNotFound)

	first, err := r.Create(models.NewTree("Pino", 0, 0, 3.0))
	require.NoError(t, err)
	second, err := r.Create(models.NewTree("Olivo", 0, 0, 2.0))
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	// Deleting the last product must not recycle its id path through GetLast.
	require.NoError(t, r.Delete(first.ID))
	last, err := r.GetLast()
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)

	third, err := r.Create(models.NewTree("Manzano", 0, 0, 1.5))
	require.NoError(t, err)
	assert.Equal(t, second.ID+1, third.ID)
}

func TestInMemoryProductRepository_UpdateReplacesMutableFields(t *testing.T) {
	r := NewInMemoryProductRepository()
	created, err := r.Create(models.NewDecoration("Tiesto", 1, 2.0, "Madera"))
	require.NoError(t, err)

	created.Name = "Tiesto grande"
	created.Quantity = 7
	created.Price = 9.5
	updated, err := r.Update(created)
	require.NoError(t, err)
	assert.Equal(t, "Tiesto grande", updated.Name)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, 9.5, updated.Price)
	assert.Equal(t, "Madera", updated.Material, "attribute never changes on update")

	_, err = r.Update(models.Product{ID: 42, Name: "x"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestInMemoryProductRepository_SeedCatalog(t *testing.T) {
	r := NewInMemoryProductRepository()
	require.NoError(t, r.SeedCatalog())

	all, err := r.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 13)
	for _, p := range all {
		assert.Equal(t, 0, p.Quantity)
		assert.Equal(t, 0.0, p.Price)
		assert.NoError(t, p.Validate())
	}

	trees, _ := r.GetByType(models.Tree)
	flowers, _ := r.GetByType(models.Flower)
	decorations, _ := r.GetByType(models.Decoration)
	assert.Len(t, trees, 4)
	assert.Len(t, flowers, 5)
	assert.Len(t, decorations, 4)

	// Seeding is one-time provisioning: repeating it duplicates rows.
	require.NoError(t, r.SeedCatalog())
	all, _ = r.GetAll()
	assert.Len(t, all, 26)
}

func TestInMemoryTicketRepository_AppendOnly(t *testing.T) {
	r := NewInMemoryTicketRepository()

	all, err := r.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	ticket := models.Ticket{
		Lines: []models.TicketLine{
			{ProductID: 1, Name: "Rosa", Type: models.Flower, UnitPrice: 2.5, Quantity: 2},
		},
	}
	ticket.Total = ticket.ComputeTotal()

	created, err := r.Create(ticket)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 5.0, created.Total)

	second, err := r.Create(ticket)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	all, err = r.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
