package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *recipeService) List(ctx context.Context, ownerID uint) ([]*entity.Recipe, error) {
	var recipes []*entity.Recipe
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RecipeRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		recipes = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// Create validates the recipe before opening a transaction; invalid input never reaches storage.
func (srv *recipeService) Create(ctx context.Context, input usecase.CreateRecipeInput) (*entity.Recipe, error) {
	recipe, err := entity.NewRecipe(input.Title, input.Instructions, input.MinutesToComplete)
	if err != nil {
		return nil, err
	}
	recipe.OwnerID = input.OwnerID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RecipeRepo().Create(ctx, recipe)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create recipe", slog.Uint64("ownerID", uint64(input.OwnerID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create recipe transaction")
	}

	srv.log(ctx).Info("Recipe created", slog.Uint64("recipeID", uint64(recipe.ID)), slog.Uint64("ownerID", uint64(input.OwnerID)))

	return recipe, nil
}
