package handlers

import (
	"errors"

	"storefront/internal/repositories"
	"storefront/internal/serializers"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
// The categories route is registered before the id route so it is never
// captured as a product id; the <int> constraint 404s non-integer ids.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/categories", h.HandleListCategories)
	productRoutes.Get("/:id<int>", h.HandleGetProduct)
}

// HandleListProducts returns every product, ordered by id.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(serializers.NewProductList(products))
}

// HandleGetProduct returns a single product, or a null body with status 200
// when the id is unknown. The null-instead-of-404 shape is what the
// storefront frontend expects; changing it would break the client.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return fiber.ErrNotFound
	}

	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(nil)
		}
		return err
	}
	return c.JSON(serializers.NewProduct(product))
}

// HandleListCategories returns every category, ordered by id.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(serializers.NewCategoryList(categories))
}
