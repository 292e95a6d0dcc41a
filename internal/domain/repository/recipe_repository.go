package repository

import (
	"context"

	"recipebox/internal/domain/entity"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	// FindByOwner lists every recipe owned by the given user, oldest first.
	FindByOwner(ctx context.Context, ownerID uint) ([]*entity.Recipe, error)

	// Create persists a new recipe. Integrity violations yield domainerrors.ErrInvalidRecipe.
	Create(ctx context.Context, recipe *entity.Recipe) error
}
