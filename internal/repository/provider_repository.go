package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProviderRepository interface {
	List(ctx context.Context) ([]model.ProviderProfile, error)
	FindByUserID(ctx context.Context, userID string) (model.ProviderProfile, error)
	TopRated(ctx context.Context) ([]model.ProviderProfile, error)
}
