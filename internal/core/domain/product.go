package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrProductDeleted = errors.New("product already deleted")

// Product is a catalog entry. Deletion is soft: IsDeleted flips and the
// record stays behind for reporting; listings always filter it out.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CategoryID  string     `json:"category_id"`
	Stock       int        `json:"stock"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// ProductFilter captures the optional listing criteria. Nil pointer fields
// mean "no bound".
type ProductFilter struct {
	CategoryID  string
	MinPrice    *float64
	MaxPrice    *float64
	Name        string
	Description string
	MinStock    *int
	MaxStock    *int
	Page        int
	Limit       int
}
