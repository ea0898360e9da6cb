package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
// The catalog is read-only over HTTP, so there is no update or delete;
// Create exists for startup seeding.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
}
