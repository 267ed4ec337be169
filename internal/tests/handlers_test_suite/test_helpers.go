package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/flowershop/internal/auth"
	api "github.com/rogerio-castellano/flowershop/internal/http"
	handler "github.com/rogerio-castellano/flowershop/internal/http/handlers"
	rl "github.com/rogerio-castellano/flowershop/internal/http/rate_limiter"
	"github.com/rogerio-castellano/flowershop/internal/repo"
	"github.com/rogerio-castellano/flowershop/internal/store"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	ticketRepo  *repo.InMemoryTicketRepository
)

func init() {
	rl.SetLimits(1000, 1000)
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	auth.SetSecret("test-secret")
	hash, _ := auth.HashPassword(password)
	auth.SetOperatorHash(hash)

	productRepo = repo.NewInMemoryProductRepository()
	ticketRepo = repo.NewInMemoryTicketRepository()

	inventory := store.NewInventoryManager(productRepo)
	handler.SetInventoryManager(inventory)
	handler.SetTicketManager(store.NewTicketManager(inventory, ticketRepo))
	handler.SetRedisService(nil)
}

func clearAll() {
	productRepo.Clear()
	ticketRepo.Clear()
}

func generateToken(r http.Handler, password string) (string, error) {
	payload := handler.OperatorLogin{Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, url string, payload any, authenticated bool) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, url, &body)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p, true)
}

func createTicket(r http.Handler, t handler.TicketRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/tickets", t, true)
}
