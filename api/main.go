package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/flowershop/internal/auth"
	"github.com/rogerio-castellano/flowershop/internal/config"
	"github.com/rogerio-castellano/flowershop/internal/db"
	api "github.com/rogerio-castellano/flowershop/internal/http"
	"github.com/rogerio-castellano/flowershop/internal/http/handlers"
	rl "github.com/rogerio-castellano/flowershop/internal/http/rate_limiter"
	"github.com/rogerio-castellano/flowershop/internal/redissvc"
	"github.com/rogerio-castellano/flowershop/internal/repo"
	"github.com/rogerio-castellano/flowershop/internal/store"
)

// @title Flower Shop API
// @version 1.0
// @description Inventory and point-of-sale ledger for a small flower shop.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load configuration:", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	auth.SetOperatorHash(cfg.OperatorHash)
	rl.SetLimits(cfg.RateLimit, cfg.RateBurst)
	go rl.StartVisitorCleanupLoop()

	products, tickets, err := openRepositories(cfg)
	if err != nil {
		log.Fatal("could not open backend:", err)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("could not connect to redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx))
	}

	inventory := store.NewInventoryManager(products)
	handlers.SetInventoryManager(inventory)
	handlers.SetTicketManager(store.NewTicketManager(inventory, tickets))

	r := api.NewRouter()
	log.Printf("flower shop listening on %s (backend: %s)", cfg.Addr, cfg.Backend)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}

func openRepositories(cfg config.Config) (repo.ProductRepository, repo.TicketRepository, error) {
	switch cfg.Backend {
	case "postgres":
		database, err := db.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(database); err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresProductRepository(database), repo.NewPostgresTicketRepository(database), nil
	case "bolt":
		database, err := db.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		products, err := repo.NewBoltProductRepository(database)
		if err != nil {
			return nil, nil, err
		}
		tickets, err := repo.NewBoltTicketRepository(database)
		if err != nil {
			return nil, nil, err
		}
		return products, tickets, nil
	default:
		return repo.NewInMemoryProductRepository(), repo.NewInMemoryTicketRepository(), nil
	}
}
