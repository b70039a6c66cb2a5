package repository

import (
	"context"

	"app/internal/domain/model"
)

// 注文作成ペイロード。価格はクライアント側から一切送らない（サーバーがスナップショットを確定する）。
type CreateOrderItem struct {
	MealID   string `json:"meal_id"`
	Quantity int64  `json:"quantity"`
}

type CreateOrderInput struct {
	Items           []CreateOrderItem `json:"items"`
	DeliveryAddress string            `json:"delivery_address"`
	Phone           string            `json:"phone"`
	Notes           string            `json:"notes,omitempty"`
	IdempotencyKey  string            `json:"idempotency_key"`
}

type OrderRepository interface {
	ListMine(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (model.Order, error)
	Cancel(ctx context.Context, orderID string) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error)
}
