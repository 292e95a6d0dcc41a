package handler

import "recipebox/internal/domain/entity"

// UserView is the public shape of a user. It never carries the password secret or recipes.
type UserView struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"image_url"`
}

// RecipeView is the public shape of a recipe. The owner is referenced by id only.
type RecipeView struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
	OwnerID           uint   `json:"owner_id"`
}

func newUserView(user *entity.User) UserView {
	return UserView{
		ID:       user.ID,
		Username: user.Username,
		Bio:      user.Bio,
		ImageURL: user.ImageURL,
	}
}

func newRecipeView(recipe *entity.Recipe) RecipeView {
	return RecipeView{
		ID:                recipe.ID,
		Title:             recipe.Title,
		Instructions:      recipe.Instructions(),
		MinutesToComplete: recipe.MinutesToComplete,
		OwnerID:           recipe.OwnerID,
	}
}

func newRecipeViews(recipes []*entity.Recipe) []RecipeView {
	views := make([]RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, newRecipeView(recipe))
	}

	return views
}
