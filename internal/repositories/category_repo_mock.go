package repositories

import (
	"sort"
	"sync"

	"storefront/internal/models"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[uint]models.Category
	nextID     uint
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[uint]models.Category),
		nextID:     1,
	}
}

// GetAll returns all categories ordered by id.
func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryList := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categoryList = append(categoryList, c)
	}
	sort.Slice(categoryList, func(i, j int) bool { return categoryList[i].ID < categoryList[j].ID })
	return categoryList, nil
}

// Create adds a new category, assigning the next id if unset.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == 0 {
		category.ID = r.nextID
	}
	if category.ID >= r.nextID {
		r.nextID = category.ID + 1
	}
	r.categories[category.ID] = *category
	return nil
}
