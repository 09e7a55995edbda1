package dto

import "github.com/shopspring/decimal"

// TopProductResponse producto más pedido con su cantidad acumulada.
type TopProductResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// TopUserResponse usuario con su número de pedidos.
type TopUserResponse struct {
	UserID     int64  `json:"userId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	OrderCount int64  `json:"orderCount"`
}

// DaySalesResponse pedidos de un día calendario de negocio.
type DaySalesResponse struct {
	Date        string          `json:"date"` // YYYY-MM-DD hora de Perú
	OrderCount  int64           `json:"orderCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// DashboardResponse resumen agregado del panel.
type DashboardResponse struct {
	TotalProducts  int64                `json:"totalProducts"`
	TotalOrders    int64                `json:"totalOrders"`
	TotalRevenue   decimal.Decimal      `json:"totalRevenue"`
	TopProducts    []TopProductResponse `json:"topProducts"`
	TopUsers       []TopUserResponse    `json:"topUsers"`
	LatestUsers    []UserResponse       `json:"latestUsers"`
	LatestProducts []ProductResponse    `json:"latestProducts"`
	LastWeek       []DaySalesResponse   `json:"lastWeek"`
}
