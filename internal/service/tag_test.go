package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactmansi/Recipe-Box/internal/service"
	"github.com/contactmansi/Recipe-Box/internal/testhelpers"
)

func TestListTagsOrderedByNameDesc(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	tagSvc := service.NewTagService(db)
	user := registerUser(t, db, "tags@example.com")

	_, err := tagSvc.Create(user.ID, "Dessert")
	require.NoError(t, err)
	_, err = tagSvc.Create(user.ID, "Vegan")
	require.NoError(t, err)

	tags, err := tagSvc.List(user.ID, false)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
}

func TestListTagsScopedToOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	tagSvc := service.NewTagService(db)
	user := registerUser(t, db, "owner@example.com")
	other := registerUser(t, db, "other@example.com")

	_, err := tagSvc.Create(other.ID, "Fruity")
	require.NoError(t, err)
	mine, err := tagSvc.Create(user.ID, "Comfort Food")
	require.NoError(t, err)

	tags, err := tagSvc.List(user.ID, false)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, mine.Name, tags[0].Name)
}

func TestListTagsAssignedOnly(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	tagSvc := service.NewTagService(db)
	recipeSvc := service.NewRecipeService(db)
	user := registerUser(t, db, "assigned@example.com")

	assigned, err := tagSvc.Create(user.ID, "Breakfast")
	require.NoError(t, err)
	_, err = tagSvc.Create(user.ID, "Unused")
	require.NoError(t, err)

	// Link the tag to two recipes: it must still appear exactly once.
	for _, title := range []string{"Pancakes", "Waffles"} {
		_, err = recipeSvc.Create(user.ID, service.RecipeInput{
			Title:       title,
			TimeMinutes: 10,
			Price:       4.50,
			TagIDs:      []uint{assigned.ID},
		})
		require.NoError(t, err)
	}

	tags, err := tagSvc.List(user.ID, true)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Breakfast", tags[0].Name)
}

func TestCreateTagEmptyName(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	tagSvc := service.NewTagService(db)
	user := registerUser(t, db, "emptytag@example.com")

	_, err := tagSvc.Create(user.ID, "")
	assert.ErrorIs(t, err, service.ErrEmptyName)

	_, err = tagSvc.Create(user.ID, "   ")
	assert.ErrorIs(t, err, service.ErrEmptyName)
}

func TestCreateTagStampsOwner(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	tagSvc := service.NewTagService(db)
	user := registerUser(t, db, "stamp@example.com")

	tag, err := tagSvc.Create(user.ID, "Beverage")
	require.NoError(t, err)
	assert.Equal(t, user.ID, tag.UserID)
	assert.NotZero(t, tag.ID)
}
