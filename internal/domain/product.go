package domain

import "time"

// Product is a catalog entry. Catalog data is read-only reference data owned
// by the catalog provider; prices are in minor currency units (kobo).
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	ImageHint   string `json:"image_hint,omitempty"`
	Stock       int    `json:"stock"`
	Size        string `json:"size,omitempty"`
}

// Category groups products for browsing.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	ImageHint string `json:"image_hint,omitempty"`
}

// OrderStatus is the fulfilment state of a historical order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Order is a read-only historical order served by the catalog provider.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Date          time.Time   `json:"date"`
	Status        OrderStatus `json:"status"`
	Total         int64       `json:"total"`
	Items         []OrderItem `json:"items"`
}

// OrderItem is a line within a historical order.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}
