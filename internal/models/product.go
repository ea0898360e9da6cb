package models

// Product represents a product in the catalog. Products are seeded at
// startup and read-only over HTTP; the store assigns the id.
type Product struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"type:varchar(64);not null" validate:"required"`
	Price       int64  `json:"price" gorm:"not null" validate:"required"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	Image       string `json:"image" gorm:"type:varchar(260);not null" validate:"required"`
	// CategoryID is nullable: a product may exist outside any category.
	// The column keeps the plural name the frontend already depends on.
	CategoryID *uint     `json:"categories_id" gorm:"column:categories_id"`
	Category   *Category `json:"-" gorm:"foreignKey:CategoryID"`
}
