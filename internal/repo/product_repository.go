package repo

import (
	"errors"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the persistence contract for products. Every
// backend (postgres, bolt, memory) satisfies the same contract; the store
// layer never depends on which one is active.
type ProductRepository interface {
	// Create persists a product without an id and returns it with the id
	// assigned by the backend.
	Create(product models.Product) (models.Product, error)
	GetByID(id int) (models.Product, error)
	// GetLast returns the product with the highest id, or ErrProductNotFound
	// when the catalog is empty. Backends without native id generation use
	// it to derive the next id.
	GetLast() (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByType(t models.ProductType) ([]models.Product, error)
	// Update fully replaces name, quantity and price of the product matching
	// its id. The type and attribute of a product never change.
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	// SeedCatalog inserts the fixed starter catalog. It is a one-time
	// provisioning operation, not an idempotent migration: calling it twice
	// duplicates the catalog.
	SeedCatalog() error
}
