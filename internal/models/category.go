package models

// Category groups products. One category has many products via
// Product.CategoryID; responses never embed the product list.
type Category struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Category string `json:"category" gorm:"type:varchar(300);not null" validate:"required"`
}
