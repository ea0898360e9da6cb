package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// setupCatalogApp wires the catalog handler over in-memory repositories.
func setupCatalogApp() (*fiber.App, *repositories.MockProductRepository, *repositories.MockCategoryRepository) {
	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()

	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	app := fiber.New()
	catalogHandler.RegisterRoutes(app)
	return app, productRepo, categoryRepo
}

func seedCatalogForTest(t *testing.T, productRepo *repositories.MockProductRepository, categoryRepo *repositories.MockCategoryRepository) {
	t.Helper()
	categories := []models.Category{
		{Category: "Apparel"},
		{Category: "Accessories"},
	}
	for i := range categories {
		assert.NoError(t, categoryRepo.Create(&categories[i]))
	}
	products := []models.Product{
		{Title: "Plain White Tee", Price: 1999, Description: "Classic cotton t-shirt.", Image: "/images/white-tee.jpg", CategoryID: &categories[0].ID},
		{Title: "Denim Jacket", Price: 6499, Description: "Mid-weight denim jacket.", Image: "/images/denim-jacket.jpg", CategoryID: &categories[0].ID},
		{Title: "Canvas Tote", Price: 2499, Description: "Heavy-duty canvas tote.", Image: "/images/canvas-tote.jpg", CategoryID: &categories[1].ID},
	}
	for i := range products {
		assert.NoError(t, productRepo.Create(&products[i]))
	}
}

func TestListProducts(t *testing.T) {
	app, productRepo, categoryRepo := setupCatalogApp()
	seedCatalogForTest(t, productRepo, categoryRepo)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 3)

	// Every listed object carries exactly the allow-listed fields.
	for _, p := range products {
		assert.Len(t, p, 6)
		for _, key := range []string{"id", "title", "price", "categories_id", "description", "image"} {
			assert.Contains(t, p, key)
		}
	}
	assert.Equal(t, "Plain White Tee", products[0]["title"])
	assert.Equal(t, float64(1), products[0]["id"])
}

func TestListCategories(t *testing.T) {
	app, productRepo, categoryRepo := setupCatalogApp()
	seedCatalogForTest(t, productRepo, categoryRepo)

	req := httptest.NewRequest(http.MethodGet, "/products/categories", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Len(t, categories, 2)
	for _, c := range categories {
		assert.Len(t, c, 2)
		assert.Contains(t, c, "id")
		assert.Contains(t, c, "category")
	}
	assert.Equal(t, "Apparel", categories[0]["category"])
}

func TestGetProduct(t *testing.T) {
	app, productRepo, categoryRepo := setupCatalogApp()
	seedCatalogForTest(t, productRepo, categoryRepo)

	req := httptest.NewRequest(http.MethodGet, "/products/2", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var product map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&product))
	assert.Equal(t, float64(2), product["id"])
	assert.Equal(t, "Denim Jacket", product["title"])
	assert.Equal(t, float64(6499), product["price"])
}

func TestGetProductRepeatedReadsAreIdentical(t *testing.T) {
	app, productRepo, categoryRepo := setupCatalogApp()
	seedCatalogForTest(t, productRepo, categoryRepo)

	read := func() string {
		req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		return string(body)
	}

	first := read()
	second := read()
	assert.Equal(t, first, second)
}

func TestGetUnknownProductReturnsNull(t *testing.T) {
	app, productRepo, categoryRepo := setupCatalogApp()
	seedCatalogForTest(t, productRepo, categoryRepo)

	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	// Missing products answer 200 with a null body, never 404 or 500.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "null", string(body))
}

func TestGetProductNonIntegerID(t *testing.T) {
	app, productRepo, categoryRepo := setupCatalogApp()
	seedCatalogForTest(t, productRepo, categoryRepo)

	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
