package store

import (
	"fmt"
	"sync"

	"github.com/rogerio-castellano/flowershop/internal/models"
	"github.com/rogerio-castellano/flowershop/internal/repo"
)

// InventoryManager enforces the product lifecycle and stock invariants.
// All quantity mutation passes through here; it is the sole writer of stock.
//
// mu serializes every stock write (including a whole ticket commit) against
// reads, so no caller ever observes a half-committed ticket.
type InventoryManager struct {
	mu       sync.RWMutex
	products repo.ProductRepository
}

func NewInventoryManager(products repo.ProductRepository) *InventoryManager {
	return &InventoryManager{products: products}
}

// AddProduct constructs a product of the given variant and persists it.
// The attribute must match the type: a string color for a flower, a float64
// height for a tree, a string material for a decoration.
func (m *InventoryManager) AddProduct(typ models.ProductType, name string, quantity int, price float64, attribute any) (models.Product, error) {
	if quantity < 0 {
		return models.Product{}, &ValidationError{Field: "quantity", Reason: "cannot be negative"}
	}
	if price < 0 {
		return models.Product{}, &ValidationError{Field: "price", Reason: "cannot be negative"}
	}

	var p models.Product
	switch typ {
	case models.Flower:
		color, ok := attribute.(string)
		if !ok || color == "" {
			return models.Product{}, &ValidationError{Field: "attribute", Reason: "a flower requires a color"}
		}
		p = models.NewFlower(name, quantity, price, color)
	case models.Tree:
		height, ok := attribute.(float64)
		if !ok || height <= 0 {
			return models.Product{}, &ValidationError{Field: "attribute", Reason: "a tree requires a positive height"}
		}
		p = models.NewTree(name, quantity, price, height)
	case models.Decoration:
		material, ok := attribute.(string)
		if !ok || material == "" {
			return models.Product{}, &ValidationError{Field: "attribute", Reason: "a decoration requires a material"}
		}
		p = models.NewDecoration(name, quantity, price, material)
	default:
		return models.Product{}, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown product type %q", typ)}
	}

	if err := p.Validate(); err != nil {
		return models.Product{}, &ValidationError{Field: "product", Reason: err.Error()}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	created, err := m.products.Create(p)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to add product: %w", err)
	}
	return created, nil
}

// UpdateStock replaces the quantity and price of a product. The supplied
// quantity is a replacement, not a delta, and must be positive; a rejected
// value leaves the product untouched so the boundary can reprompt.
func (m *InventoryManager) UpdateStock(id, quantity int, price float64) (models.Product, error) {
	if quantity <= 0 {
		return models.Product{}, &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
	}
	if price < 0 {
		return models.Product{}, &ValidationError{Field: "price", Reason: "cannot be negative"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.products.GetByID(id)
	if err != nil {
		return models.Product{}, err
	}
	p.Quantity = quantity
	p.Price = price
	updated, err := m.products.Update(p)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update stock: %w", err)
	}
	return updated, nil
}

// DeleteProduct removes a product entirely. Historical tickets keep their
// sale-time snapshots, so they are unaffected.
func (m *InventoryManager) DeleteProduct(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products.Delete(id)
}

// Product returns the current state of one product.
func (m *InventoryManager) Product(id int) (models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.products.GetByID(id)
}

// AllProducts returns the whole catalog.
func (m *InventoryManager) AllProducts() ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.products.GetAll()
}

// ProductsByType returns the catalog filtered by variant.
func (m *InventoryManager) ProductsByType(t models.ProductType) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.products.GetByType(t)
}

// TotalValue sums the unit price over all products. It deliberately does not
// weight by quantity, matching the behavior the shop reports today.
func (m *InventoryManager) TotalValue() (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products, err := m.products.GetAll()
	if err != nil {
		return 0, err
	}
	var value float64
	for _, p := range products {
		value += p.Price
	}
	return value, nil
}

// SeedCatalog provisions the fixed starter catalog. One-time operation:
// repeating it duplicates the catalog rows.
func (m *InventoryManager) SeedCatalog() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products.SeedCatalog()
}
