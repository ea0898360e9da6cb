package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product by its id.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetAllCategories retrieves all categories.
func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}
