package entity

import (
	"time"
	"unicode/utf8"

	domainerrors "recipebox/internal/domain/errors"
)

// MinInstructionsLength is the minimum number of characters (runes) a recipe's instructions need.
const MinInstructionsLength = 50

// Recipe is a user-owned set of cooking instructions.
type Recipe struct {
	ID                uint
	Title             string
	MinutesToComplete *int
	OwnerID           uint // Always the id of the session user that created it.
	CreatedAt         time.Time
	UpdatedAt         time.Time

	instructions string
}

// NewRecipe builds a recipe. Instructions are checked before the title.
func NewRecipe(title, instructions string, minutesToComplete *int) (*Recipe, error) {
	recipe := &Recipe{
		Title:             title,
		MinutesToComplete: minutesToComplete,
	}
	if err := recipe.SetInstructions(instructions); err != nil {
		return nil, err
	}

	if title == "" {
		return nil, domainerrors.ErrInvalidRecipe.WrapMessage("title is required")
	}

	return recipe, nil
}

// HydrateRecipe rebuilds a recipe that was validated before it was stored.
func HydrateRecipe(id uint, title, instructions string, minutesToComplete *int, ownerID uint, createdAt, updatedAt time.Time) *Recipe {
	return &Recipe{
		ID:                id,
		Title:             title,
		MinutesToComplete: minutesToComplete,
		OwnerID:           ownerID,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
		instructions:      instructions,
	}
}

// Instructions returns the validated instructions text.
func (r *Recipe) Instructions() string {
	return r.instructions
}

// SetInstructions validates and assigns instructions; a rejected value leaves the recipe unchanged.
func (r *Recipe) SetInstructions(instructions string) error {
	if err := ValidateInstructions(instructions); err != nil {
		return err
	}

	r.instructions = instructions

	return nil
}

// ValidateInstructions requires at least MinInstructionsLength characters.
func ValidateInstructions(instructions string) error {
	if instructions == "" || utf8.RuneCountInString(instructions) < MinInstructionsLength {
		return domainerrors.ErrInstructionsTooShort
	}

	return nil
}
