// Package model holds the GORM persistence models.
package model

// All lists every persisted model in creation order.
func All() []any {
	return []any{
		&UserModel{},
		&RecipeModel{},
		&SessionModel{},
	}
}
