package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/flowershop/internal/models"
)

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Price:     p.Price,
		Type:      string(p.Type),
		Attribute: p.Attribute(),
	}
}

// CreateProductHandler godoc
// @Summary Create a new typed product
// @Description Adds a flower, tree or decoration to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	typ, _ := models.ParseProductType(req.Type)
	var attribute any
	switch typ {
	case models.Flower:
		attribute = req.Color
	case models.Tree:
		attribute = req.Height
	case models.Decoration:
		attribute = req.Material
	}

	created, err := inventory.AddProduct(typ, req.Name, req.Quantity, req.Price, attribute)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	invalidateProductCache()

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if cache != nil {
		if payload, ok := cache.CachedProductList(); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	products, err := inventory.AllProducts()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}

	if cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			cache.StoreProductList(payload)
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := inventory.Product(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// GetProductsByTypeHandler godoc
// @Summary List products of one type
// @Tags products
// @Produce json
// @Param type path string true "Product type (FLOWER, TREE or DECORATION)"
// @Success 200 {array} ProductResponse
// @Failure 400 {string} string "Invalid type"
// @Router /products/type/{type} [get]
func GetProductsByTypeHandler(w http.ResponseWriter, r *http.Request) {
	typ, err := models.ParseProductType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, "invalid product type", http.StatusBadRequest)
		return
	}

	products, err := inventory.ProductsByType(typ)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// UpdateStockHandler godoc
// @Summary Replace the stock and price of a product
// @Description The quantity is a replacement value and must be greater than zero
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param stock body StockUpdateRequest true "New quantity and price"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/stock [put]
func UpdateStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req StockUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := inventory.UpdateStock(id, req.Quantity, req.Price)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	invalidateProductCache()

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := inventory.DeleteProduct(id); err != nil {
		writeStoreError(w, err)
		return
	}
	invalidateProductCache()

	w.WriteHeader(http.StatusNoContent)
}

// InventoryValueHandler godoc
// @Summary Total shop value
// @Description Sums the unit price over the whole catalog
// @Tags reports
// @Produce json
// @Success 200 {object} InventoryValueResult
// @Router /inventory/value [get]
func InventoryValueHandler(w http.ResponseWriter, r *http.Request) {
	value, err := inventory.TotalValue()
	if err != nil {
		http.Error(w, "could not compute inventory value", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, InventoryValueResult{Value: value})
}

// SeedCatalogHandler godoc
// @Summary Provision the starter catalog
// @Description One-time operation; repeating it duplicates the catalog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 201 {object} SeedResult
// @Router /admin/seed [post]
func SeedCatalogHandler(w http.ResponseWriter, r *http.Request) {
	if err := inventory.SeedCatalog(); err != nil {
		http.Error(w, "could not seed catalog", http.StatusInternalServerError)
		return
	}
	invalidateProductCache()

	writeJSON(w, http.StatusCreated, SeedResult{Message: "starter catalog provisioned"})
}

func invalidateProductCache() {
	if cache != nil {
		cache.InvalidateProductList()
	}
}
