package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactmansi/Recipe-Box/internal/service"
	"github.com/contactmansi/Recipe-Box/internal/testhelpers"
)

func TestListIngredientsOrderedAndScoped(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ingredientSvc := service.NewIngredientService(db)
	user := registerUser(t, db, "ing@example.com")
	other := registerUser(t, db, "ing-other@example.com")

	_, err := ingredientSvc.Create(user.ID, "Kale")
	require.NoError(t, err)
	_, err = ingredientSvc.Create(user.ID, "Salt")
	require.NoError(t, err)
	_, err = ingredientSvc.Create(other.ID, "Vinegar")
	require.NoError(t, err)

	ingredients, err := ingredientSvc.List(user.ID, false)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Salt", ingredients[0].Name)
	assert.Equal(t, "Kale", ingredients[1].Name)
}

func TestListIngredientsAssignedOnly(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ingredientSvc := service.NewIngredientService(db)
	recipeSvc := service.NewRecipeService(db)
	user := registerUser(t, db, "ing-assigned@example.com")

	used, err := ingredientSvc.Create(user.ID, "Eggs")
	require.NoError(t, err)
	_, err = ingredientSvc.Create(user.ID, "Truffle")
	require.NoError(t, err)

	_, err = recipeSvc.Create(user.ID, service.RecipeInput{
		Title:         "Omelette",
		TimeMinutes:   5,
		Price:         2.00,
		IngredientIDs: []uint{used.ID},
	})
	require.NoError(t, err)

	ingredients, err := ingredientSvc.List(user.ID, true)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Eggs", ingredients[0].Name)
}

func TestCreateIngredientEmptyName(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ingredientSvc := service.NewIngredientService(db)
	user := registerUser(t, db, "ing-empty@example.com")

	_, err := ingredientSvc.Create(user.ID, "")
	assert.ErrorIs(t, err, service.ErrEmptyName)
}
