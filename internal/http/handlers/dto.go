package handlers

type ProductRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Color    string  `json:"color,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Material string  `json:"material,omitempty"`
}

type ProductResponse struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Type      string  `json:"type"`
	Attribute string  `json:"attribute"`
}

type StockUpdateRequest struct {
	Quantity int     `json:"quantity"` // replacement value, not a delta
	Price    float64 `json:"price"`
}

type TicketLineRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type TicketRequest struct {
	Lines []TicketLineRequest `json:"lines"`
}

type TicketLineResponse struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type TicketResponse struct {
	Id    int                  `json:"id"`
	Date  string               `json:"date"`
	Lines []TicketLineResponse `json:"lines"`
	Total float64              `json:"total"`
}

type InventoryValueResult struct {
	Value float64 `json:"value"`
}

type BenefitsResult struct {
	Benefits float64 `json:"benefits"`
}

type OperatorLogin struct {
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type SeedResult struct {
	Message string `json:"message"`
}
