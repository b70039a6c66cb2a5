package repository

import (
	"context"

	"app/internal/domain/model"
)

type MealListQuery struct {
	Page       int
	Limit      int
	Q          string
	CategoryID string
	ProviderID string
}

type MealRepository interface {
	List(ctx context.Context, q MealListQuery) ([]model.Meal, int64, error)
	FindByID(ctx context.Context, mealID string) (model.Meal, error)
	Create(ctx context.Context, m model.Meal) (model.Meal, error)
	Update(ctx context.Context, m model.Meal) (model.Meal, error)
	Delete(ctx context.Context, mealID string) error
	Suggest(ctx context.Context, q string) ([]string, error)
}
