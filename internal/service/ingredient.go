package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contactmansi/Recipe-Box/internal/models"
)

// IngredientService handles ingredient operations scoped to the owning
// user. The contract mirrors TagService.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// List returns the caller's ingredients ordered by name descending,
// optionally restricted to ingredients used by at least one recipe.
func (s *IngredientService) List(userID uuid.UUID, assignedOnly bool) ([]models.Ingredient, error) {
	query := s.db.Where("user_id = ?", userID)
	if assignedOnly {
		query = query.Where("id IN (SELECT DISTINCT ingredient_id FROM recipe_ingredients)")
	}

	var ingredients []models.Ingredient
	if err := query.Order("name DESC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Create(userID uuid.UUID, name string) (*models.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	ingredient := models.Ingredient{Name: name, UserID: userID}
	if err := s.db.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}
