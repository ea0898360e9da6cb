// Package serializers defines the response shapes for catalog records.
// Each response type is an explicit allow-list: fields added to a model
// later never reach the wire unless they are added here too.
package serializers

import "storefront/internal/models"

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	CategoryID  *uint  `json:"categories_id"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
}

// NewProduct maps a product record to its response shape.
func NewProduct(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Image:       p.Image,
	}
}

// NewProductList maps a slice of product records to response shapes.
func NewProductList(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *NewProduct(&products[i]))
	}
	return out
}

// NewCategory maps a category record to its response shape.
func NewCategory(c *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:       c.ID,
		Category: c.Category,
	}
}

// NewCategoryList maps a slice of category records to response shapes.
func NewCategoryList(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *NewCategory(&categories[i]))
	}
	return out
}
