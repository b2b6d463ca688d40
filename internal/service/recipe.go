package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contactmansi/Recipe-Box/internal/models"
)

// RecipeFilter narrows a recipe listing. Within each id list the predicate
// is an OR; the two lists combine with AND.
type RecipeFilter struct {
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeInput carries the mutable fields of a recipe for creation and full
// updates.
type RecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         float64
	Link          string
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipeUpdate carries optional fields for a partial update. Nil leaves the
// field (or association list) unchanged.
type RecipeUpdate struct {
	Title         *string
	TimeMinutes   *int
	Price         *float64
	Link          *string
	TagIDs        *[]uint
	IngredientIDs *[]uint
}

// RecipeService handles recipe operations scoped to the owning user.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns the caller's recipes ordered by id descending with tags and
// ingredients expanded. The join-table filters use subqueries so a recipe
// matching several ids still appears once.
func (s *RecipeService) List(userID uuid.UUID, filter RecipeFilter) ([]models.Recipe, error) {
	query := s.db.Where("user_id = ?", userID)

	if len(filter.TagIDs) > 0 {
		query = query.Where("id IN (SELECT recipe_id FROM recipe_tags WHERE tag_id IN ?)", filter.TagIDs)
	}
	if len(filter.IngredientIDs) > 0 {
		query = query.Where("id IN (SELECT recipe_id FROM recipe_ingredients WHERE ingredient_id IN ?)", filter.IngredientIDs)
	}

	var recipes []models.Recipe
	err := query.Preload("Tags").Preload("Ingredients").Order("id DESC").Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get returns one of the caller's recipes with tags and ingredients
// expanded. Recipes owned by other users are reported as not found.
func (s *RecipeService) Get(userID uuid.UUID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Preload("Tags").Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create stores a new recipe owned by userID. Tag and ingredient ids must
// exist but are not checked against the caller's ownership.
func (s *RecipeService) Create(userID uuid.UUID, in RecipeInput) (*models.Recipe, error) {
	tags, err := s.resolveTags(in.TagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(in.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Link:        in.Link,
		UserID:      userID,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}

	return s.Get(userID, recipe.ID)
}

// Update applies a partial or full update to one of the caller's recipes.
// Scalar fields overwrite when provided. A provided association list
// replaces the links wholesale, so an empty list clears them; a nil list
// leaves them untouched. Full updates are expressed by providing every
// field.
func (s *RecipeService) Update(userID uuid.UUID, id uint, upd RecipeUpdate) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.TimeMinutes != nil {
		updates["time_minutes"] = *upd.TimeMinutes
	}
	if upd.Price != nil {
		updates["price"] = *upd.Price
	}
	if upd.Link != nil {
		updates["link"] = *upd.Link
	}
	if len(updates) > 0 {
		if err := s.db.Model(&recipe).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if upd.TagIDs != nil {
		tags, err := s.resolveTags(*upd.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.replaceAssociation(&recipe, "Tags", len(tags), &tags); err != nil {
			return nil, err
		}
	}
	if upd.IngredientIDs != nil {
		ingredients, err := s.resolveIngredients(*upd.IngredientIDs)
		if err != nil {
			return nil, err
		}
		if err := s.replaceAssociation(&recipe, "Ingredients", len(ingredients), &ingredients); err != nil {
			return nil, err
		}
	}

	return s.Get(userID, id)
}

// replaceAssociation swaps a many-to-many link set wholesale. An empty set
// clears the links, which is how a full update drops omitted associations.
func (s *RecipeService) replaceAssociation(recipe *models.Recipe, name string, count int, values interface{}) error {
	assoc := s.db.Model(recipe).Association(name)
	if count == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

func (s *RecipeService) resolveTags(ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := s.db.Find(&tags, ids).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, ErrUnknownReference
	}
	return tags, nil
}

func (s *RecipeService) resolveIngredients(ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []models.Ingredient
	if err := s.db.Find(&ingredients, ids).Error; err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, ErrUnknownReference
	}
	return ingredients, nil
}
