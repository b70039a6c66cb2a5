package repository

import (
	"context"

	"app/internal/domain/model"
)

// カートは外部APIがBearerトークンでユーザーを特定するため、userIDは渡さない。
type CartRepository interface {
	List(ctx context.Context) ([]model.CartItem, error)
	Add(ctx context.Context, mealID string, quantity int64) error
	UpdateQuantity(ctx context.Context, itemID string, quantity int64) error
	Remove(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
}
