package usecase

import (
	"context"

	"recipebox/internal/domain/entity"
)

// CreateRecipeInput defines a new recipe. OwnerID always comes from the session.
type CreateRecipeInput struct {
	OwnerID           uint
	Title             string
	Instructions      string
	MinutesToComplete *int
}

// RecipeUsecase lists and creates recipes for the logged-in user.
type RecipeUsecase interface {
	List(ctx context.Context, ownerID uint) ([]*entity.Recipe, error)
	Create(ctx context.Context, input CreateRecipeInput) (*entity.Recipe, error)
}
