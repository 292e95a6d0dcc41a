package gormrepo

import (
	"context"
	"strings"
	"testing"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRepository_CreateAndListByOwner(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	owner := newStoredUser(t, users, "owner")
	other := newStoredUser(t, users, "other")

	minutes := 30
	instructions := strings.Repeat("stir ", 12)
	for _, title := range []string{"Soup", "Stew"} {
		recipe, err := entity.NewRecipe(title, instructions, &minutes)
		require.NoError(t, err)
		recipe.OwnerID = owner.ID
		require.NoError(t, repo.Create(ctx, recipe))
		assert.NotZero(t, recipe.ID)
	}

	foreign, err := entity.NewRecipe("Toast", instructions, nil)
	require.NoError(t, err)
	foreign.OwnerID = other.ID
	require.NoError(t, repo.Create(ctx, foreign))

	recipes, err := repo.FindByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Soup", recipes[0].Title)
	assert.Equal(t, "Stew", recipes[1].Title)
	assert.Less(t, recipes[0].ID, recipes[1].ID)
	assert.Equal(t, instructions, recipes[0].Instructions())
	assert.Equal(t, owner.ID, recipes[0].OwnerID)
	require.NotNil(t, recipes[0].MinutesToComplete)
	assert.Equal(t, 30, *recipes[0].MinutesToComplete)

	otherRecipes, err := repo.FindByOwner(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, otherRecipes, 1)
	assert.Nil(t, otherRecipes[0].MinutesToComplete)
}

func TestRecipeRepository_FindByOwnerEmpty(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	recipes, err := repo.FindByOwner(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestRecipeRepository_CreateWithUnknownOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)

	recipe, err := entity.NewRecipe("Soup", strings.Repeat("stir ", 12), nil)
	require.NoError(t, err)
	recipe.OwnerID = 404

	err = repo.Create(context.Background(), recipe)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRecipe)

	var count int64
	require.NoError(t, db.Model(&model.RecipeModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
