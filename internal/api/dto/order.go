package dto

import "time"

type OrderResponse struct {
	OrderID   string    `json:"order_id"`
	Reference string    `json:"reference"`
	Address   string    `json:"address"`
	Lat       *float64  `json:"lat"`
	Lon       *float64  `json:"lon"`
	Status    string    `json:"status"`
	RouteID   *string   `json:"route_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
