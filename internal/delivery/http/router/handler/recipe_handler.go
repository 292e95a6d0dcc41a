package handler

import (
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/delivery/http/response"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateRecipeRequest is the body of POST /recipes. Owner fields sent by clients are not read.
type CreateRecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// RecipeHandler serves the logged-in user's recipe collection.
type RecipeHandler struct {
	recipes usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler.
func NewRecipeHandler(recipes usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// List returns the caller's recipes.
func (h *RecipeHandler) List(c echo.Context) error {
	ownerID, ok := deliverycontext.SessionUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	recipes, err := h.recipes.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newRecipeViews(recipes))
}

// Create stores a recipe owned by the caller.
func (h *RecipeHandler) Create(c echo.Context) error {
	ownerID, ok := deliverycontext.SessionUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	recipe, err := h.recipes.Create(c.Request().Context(), usecase.CreateRecipeInput{
		OwnerID:           ownerID,
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newRecipeView(recipe))
}
