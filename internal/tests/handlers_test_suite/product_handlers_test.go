package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	api "github.com/rogerio-castellano/flowershop/internal/http"
	handler "github.com/rogerio-castellano/flowershop/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Rosa", Type: "FLOWER", Quantity: 3, Price: 2.5, Color: "Roja"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "Rosa" {
		t.Errorf("expected name 'Rosa', got %v", resp.Name)
	}
	if resp.Type != "FLOWER" {
		t.Errorf("expected type FLOWER, got %v", resp.Type)
	}
	if resp.Attribute != "Roja" {
		t.Errorf("expected attribute 'Roja', got %v", resp.Attribute)
	}
	if resp.Quantity != 3 {
		t.Errorf("expected quantity 3, got %v", resp.Quantity)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and unknown type",
			payload:        handler.ProductRequest{Name: "", Type: "BUSH", Price: 1.0},
			expectedErrors: []string{"Name", "Type"},
		},
		{
			name:           "Flower without color",
			payload:        handler.ProductRequest{Name: "Rosa", Type: "FLOWER", Price: 1.0},
			expectedErrors: []string{"Color"},
		},
		{
			name:           "Tree without height",
			payload:        handler.ProductRequest{Name: "Pino", Type: "TREE", Price: 1.0},
			expectedErrors: []string{"Height"},
		},
		{
			name:           "Decoration without material",
			payload:        handler.ProductRequest{Name: "Jarron", Type: "DECORATION", Price: 1.0},
			expectedErrors: []string{"Material"},
		},
		{
			name:           "Negative quantity and price",
			payload:        handler.ProductRequest{Name: "Rosa", Type: "FLOWER", Quantity: -1, Price: -5, Color: "Roja"},
			expectedErrors: []string{"Quantity", "Price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/products", handler.ProductRequest{Name: "Rosa", Type: "FLOWER", Price: 1, Color: "Roja"}, false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestGetProductsByTypeHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Rosa", Type: "FLOWER", Quantity: 1, Price: 2.5, Color: "Roja"})
	createProduct(r, handler.ProductRequest{Name: "Pino", Type: "TREE", Quantity: 1, Price: 30, Height: 3.0})

	w := doJSON(r, http.MethodGet, "/products/type/TREE", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "Pino" {
		t.Errorf("expected only 'Pino', got %+v", resp)
	}

	w = doJSON(r, http.MethodGet, "/products/type/SHRUB", nil, false)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown type, got %d", w.Code)
	}
}

func TestUpdateStockHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Rosa", Type: "FLOWER", Quantity: 5, Price: 1.0, Color: "Roja"})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d/stock", created.Id), handler.StockUpdateRequest{Quantity: 12, Price: 3.5}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var updated handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.Quantity != 12 || updated.Price != 3.5 {
		t.Errorf("expected replacement update, got %+v", updated)
	}

	// Non-positive quantity is rejected without mutation.
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d/stock", created.Id), handler.StockUpdateRequest{Quantity: 0, Price: 2.0}, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero quantity, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.Id), nil, false)
	var fetched handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&fetched)
	if fetched.Quantity != 12 || fetched.Price != 3.5 {
		t.Errorf("expected unchanged product after rejection, got %+v", fetched)
	}

	w = doJSON(r, http.MethodPut, "/products/999/stock", handler.StockUpdateRequest{Quantity: 3, Price: 2.0}, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Jarron", Type: "DECORATION", Quantity: 1, Price: 4.0, Material: "Madera"})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.Id), nil, true)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.Id), nil, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestInventoryValueHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Rosa", Type: "FLOWER", Quantity: 10, Price: 2.5, Color: "Roja"})
	createProduct(r, handler.ProductRequest{Name: "Pino", Type: "TREE", Quantity: 3, Price: 30, Height: 3.0})

	w := doJSON(r, http.MethodGet, "/inventory/value", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.InventoryValueResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Value != 32.5 {
		t.Errorf("expected value 32.5, got %v", resp.Value)
	}
}

func TestSeedCatalogHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/admin/seed", nil, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/products", nil, false)
	var resp []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp) != 13 {
		t.Errorf("expected 13 seeded products, got %d", len(resp))
	}
}
