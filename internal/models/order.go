package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Total     float64   `json:"total" db:"total"`
	OrderDate time.Time `json:"order_date" db:"order_date"`
}

// OrderLine is one submitted line of a placement request. Quantity and unit
// price are caller-declared; the price is not checked against the catalog.
type OrderLine struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}
