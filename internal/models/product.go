package models

import "fmt"

// ProductType identifies the variant of a product. The set is closed:
// adding a variant is a code change, not configuration.
type ProductType string

const (
	Flower     ProductType = "FLOWER"
	Tree       ProductType = "TREE"
	Decoration ProductType = "DECORATION"
)

// ParseProductType converts external input into a ProductType.
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(s) {
	case Flower, Tree, Decoration:
		return ProductType(s), nil
	}
	return "", fmt.Errorf("unknown product type %q", s)
}

// Product represents a typed stock item. Exactly one of the attribute
// fields is meaningful and it must match Type: Color for a flower,
// Height for a tree, Material for a decoration.
type Product struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    float64     `json:"price"`
	Type     ProductType `json:"type"`
	Color    string      `json:"color,omitempty"`
	Height   float64     `json:"height,omitempty"`
	Material string      `json:"material,omitempty"`
}

// NewFlower builds a flower product with its color attribute.
func NewFlower(name string, quantity int, price float64, color string) Product {
	return Product{Name: name, Quantity: quantity, Price: price, Type: Flower, Color: color}
}

// NewTree builds a tree product with its height attribute.
func NewTree(name string, quantity int, price float64, height float64) Product {
	return Product{Name: name, Quantity: quantity, Price: price, Type: Tree, Height: height}
}

// NewDecoration builds a decoration product with its material attribute.
func NewDecoration(name string, quantity int, price float64, material string) Product {
	return Product{Name: name, Quantity: quantity, Price: price, Type: Decoration, Material: material}
}

// Validate checks the field ranges and the type/attribute pairing.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product quantity cannot be negative")
	}
	if p.Price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}
	switch p.Type {
	case Flower:
		if p.Color == "" || p.Height != 0 || p.Material != "" {
			return fmt.Errorf("a flower requires a color attribute and nothing else")
		}
	case Tree:
		if p.Height <= 0 || p.Color != "" || p.Material != "" {
			return fmt.Errorf("a tree requires a positive height attribute and nothing else")
		}
	case Decoration:
		if p.Material == "" || p.Color != "" || p.Height != 0 {
			return fmt.Errorf("a decoration requires a material attribute and nothing else")
		}
	default:
		return fmt.Errorf("unknown product type %q", p.Type)
	}
	return nil
}

// Attribute returns the variant-specific attribute as display text.
func (p Product) Attribute() string {
	switch p.Type {
	case Tree:
		return fmt.Sprintf("%.1f", p.Height)
	case Flower:
		return p.Color
	case Decoration:
		return p.Material
	}
	return ""
}
