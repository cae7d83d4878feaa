// File: entities/ingredient.go
package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex:idx_ingredient_owner_name" json:"user_id"`
	Name   string    `gorm:"uniqueIndex:idx_ingredient_owner_name" json:"name"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
