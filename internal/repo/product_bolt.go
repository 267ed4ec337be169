package repo

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

var productsBucket = []byte("products")

// BoltProductRepository stores each product as a JSON document with its
// typed attribute embedded, keyed by a big-endian product id.
type BoltProductRepository struct {
	db *bolt.DB
}

func NewBoltProductRepository(db *bolt.DB) (*BoltProductRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(productsBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create products bucket: %w", err)
	}
	return &BoltProductRepository{db: db}, nil
}

func itob(id int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func (r *BoltProductRepository) Create(p models.Product) (models.Product, error) {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(productsBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		p.ID = int(seq)
		doc, err := json.Marshal(p)
		if err != nil {
			return err
		}
		return b.Put(itob(p.ID), doc)
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

func (r *BoltProductRepository) GetByID(id int) (models.Product, error) {
	var p models.Product
	err := r.db.View(func(tx *bolt.Tx) error {
		doc := tx.Bucket(productsBucket).Get(itob(id))
		if doc == nil {
			return ErrProductNotFound
		}
		return json.Unmarshal(doc, &p)
	})
	if err == ErrProductNotFound {
		return models.Product{}, err
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

func (r *BoltProductRepository) GetLast() (models.Product, error) {
	var p models.Product
	err := r.db.View(func(tx *bolt.Tx) error {
		_, doc := tx.Bucket(productsBucket).Cursor().Last()
		if doc == nil {
			return ErrProductNotFound
		}
		return json.Unmarshal(doc, &p)
	})
	if err == ErrProductNotFound {
		return models.Product{}, err
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch last product: %w", err)
	}
	return p, nil
}

func (r *BoltProductRepository) GetAll() ([]models.Product, error) {
	return r.scan(func(models.Product) bool { return true })
}

func (r *BoltProductRepository) GetByType(t models.ProductType) ([]models.Product, error) {
	return r.scan(func(p models.Product) bool { return p.Type == t })
}

func (r *BoltProductRepository) scan(keep func(models.Product) bool) ([]models.Product, error) {
	var products []models.Product
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(productsBucket).ForEach(func(_, doc []byte) error {
			var p models.Product
			if err := json.Unmarshal(doc, &p); err != nil {
				return err
			}
			if keep(p) {
				products = append(products, p)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (r *BoltProductRepository) Update(p models.Product) (models.Product, error) {
	var updated models.Product
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(productsBucket)
		doc := b.Get(itob(p.ID))
		if doc == nil {
			return ErrProductNotFound
		}
		var current models.Product
		if err := json.Unmarshal(doc, &current); err != nil {
			return err
		}
		current.Name = p.Name
		current.Quantity = p.Quantity
		current.Price = p.Price
		out, err := json.Marshal(current)
		if err != nil {
			return err
		}
		updated = current
		return b.Put(itob(p.ID), out)
	})
	if err == ErrProductNotFound {
		return models.Product{}, err
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

func (r *BoltProductRepository) Delete(id int) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(productsBucket)
		if b.Get(itob(id)) == nil {
			return ErrProductNotFound
		}
		return b.Delete(itob(id))
	})
	if err == ErrProductNotFound {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *BoltProductRepository) SeedCatalog() error {
	for _, p := range seedCatalog() {
		if _, err := r.Create(p); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	return nil
}
