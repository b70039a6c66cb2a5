package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	ListByMealID(ctx context.Context, mealID string) ([]model.Review, error)
	Create(ctx context.Context, r model.Review) (model.Review, error)
	Update(ctx context.Context, r model.Review) (model.Review, error)
	Delete(ctx context.Context, reviewID string) error
}
