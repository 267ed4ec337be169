package repo

import (
	"github.com/rogerio-castellano/flowershop/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the test suites and the dev backend.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

// Create adds a new product to the repository. The memory backend has no
// native id generation, so the next id is derived from the last product.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = 1
	if last, err := r.GetLast(); err == nil {
		product.ID = last.ID + 1
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetLast retrieves the product with the highest ID.
func (r *InMemoryProductRepository) GetLast() (models.Product, error) {
	var last models.Product
	for _, p := range r.products {
		if p.ID > last.ID {
			last = p
		}
	}
	if last.ID == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return last, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByType retrieves all products of the given type.
func (r *InMemoryProductRepository) GetByType(t models.ProductType) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			p.Name = product.Name
			p.Quantity = product.Quantity
			p.Price = product.Price
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// SeedCatalog inserts the starter catalog.
func (r *InMemoryProductRepository) SeedCatalog() error {
	for _, p := range seedCatalog() {
		if _, err := r.Create(p); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all products. Test helper.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
