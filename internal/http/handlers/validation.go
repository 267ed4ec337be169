package handlers

import (
	"strings"

	"github.com/rogerio-castellano/flowershop/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}

	typ, err := models.ParseProductType(p.Type)
	if err != nil {
		errs = append(errs, ProductValidationError{Field: "Type", Description: "Type must be FLOWER, TREE or DECORATION"})
		return errs
	}
	switch typ {
	case models.Flower:
		if strings.TrimSpace(p.Color) == "" {
			errs = append(errs, ProductValidationError{Field: "Color", Description: "A flower requires a color"})
		}
	case models.Tree:
		if p.Height <= 0 {
			errs = append(errs, ProductValidationError{Field: "Height", Description: "A tree requires a positive height"})
		}
	case models.Decoration:
		if strings.TrimSpace(p.Material) == "" {
			errs = append(errs, ProductValidationError{Field: "Material", Description: "A decoration requires a material"})
		}
	}
	return errs
}
