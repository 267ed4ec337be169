package repo

import "github.com/rogerio-castellano/flowershop/internal/models"

// seedCatalog is the fixed starter catalog: 4 trees, 5 flowers and
// 4 decorations, all starting at quantity 0 and price 0.
func seedCatalog() []models.Product {
	return []models.Product{
		models.NewTree("Manzano", 0, 0, 1.5),
		models.NewTree("Olivo", 0, 0, 2.0),
		models.NewTree("Pino", 0, 0, 3.0),
		models.NewTree("Rosal", 0, 0, 0.5),
		models.NewFlower("Rosa", 0, 0, "Roja"),
		models.NewFlower("Girasol", 0, 0, "Blanca"),
		models.NewFlower("Amapola", 0, 0, "Roja"),
		models.NewFlower("Lirio", 0, 0, "Naranja"),
		models.NewFlower("Clavel", 0, 0, "Amarillo"),
		models.NewDecoration("Jarron", 0, 0, "Madera"),
		models.NewDecoration("Tiesto", 0, 0, "Plastico"),
		models.NewDecoration("Jarron", 0, 0, "Plastico"),
		models.NewDecoration("Tiesto", 0, 0, "Madera"),
	}
}
