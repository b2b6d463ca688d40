package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a user-owned label attached to recipes.
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
}

// Ingredient is a user-owned ingredient referenced by recipes.
type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
}

// Recipe is owned by a single user and references tags and ingredients
// through explicit join tables (recipe_tags, recipe_ingredients).
type Recipe struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	TimeMinutes int          `gorm:"not null" json:"time_minutes"`
	Price       float64      `gorm:"type:numeric(5,2);not null" json:"price"`
	Link        string       `gorm:"size:255" json:"link"`
	ImagePath   string       `gorm:"size:255" json:"image,omitempty"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`
}
