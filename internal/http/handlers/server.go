package handlers

import (
	"github.com/rogerio-castellano/flowershop/internal/redissvc"
	"github.com/rogerio-castellano/flowershop/internal/store"
)

var (
	inventory *store.InventoryManager
	tickets   *store.TicketManager

	cache *redissvc.RedisService
)

func SetInventoryManager(m *store.InventoryManager) {
	inventory = m
}

func SetTicketManager(m *store.TicketManager) {
	tickets = m
}

// SetRedisService installs the optional product-list cache; nil disables it.
func SetRedisService(rs *redissvc.RedisService) {
	cache = rs
}
