package models

// User represents a registered storefront user. Only the username is
// unique; lastnames collide in reality and carry no constraint.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(200)" validate:"required"`
	Lastname string `json:"lastname" gorm:"type:varchar(200)" validate:"required"`
	Password string `gorm:"type:varchar(200)" validate:"required"` // bcrypt hash; no json tag for security
}
