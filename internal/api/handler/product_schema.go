package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryID  string  `json:"category_id" validate:"required"`
	Stock       int     `json:"stock" validate:"required,gt=0"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	CategoryID  *string  `json:"category_id"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// productFilterFromQuery maps the listing query string onto a ProductFilter.
// Unparseable numeric params are ignored rather than rejected, matching the
// lenient behavior clients already rely on.
func productFilterFromQuery(c echo.Context) domain.ProductFilter {
	var f domain.ProductFilter
	f.CategoryID = c.QueryParam("category")
	f.Name = c.QueryParam("name")
	f.Description = c.QueryParam("description")

	if v, err := strconv.ParseFloat(c.QueryParam("min_price"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_price"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("min_stock")); err == nil {
		f.MinStock = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("max_stock")); err == nil {
		f.MaxStock = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		f.Limit = v
	}
	return f
}
