package gormrepo

import (
	"context"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// recipeRepository implements repository.RecipeRepository using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

func (repo *recipeRepository) FindByOwner(ctx context.Context, ownerID uint) ([]*entity.Recipe, error) {
	var rows []model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(rows))
	for i := range rows {
		recipes = append(recipes, toRecipeDomain(&rows[i]))
	}

	return recipes, nil
}

func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isIntegrityViolation(err) {
			return domainerrors.ErrInvalidRecipe.WrapMessage("recipe violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	return entity.HydrateRecipe(
		data.ID,
		data.Title,
		data.Instructions,
		data.MinutesToComplete,
		data.UserID,
		data.CreatedAt,
		data.UpdatedAt,
	)
}

func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	return &model.RecipeModel{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions(),
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.OwnerID,
	}
}
