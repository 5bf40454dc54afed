package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category groups products for browsing and filtering.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
