package repository

import (
	"context"

	"app/internal/domain/model"
)

type AdminOrderListQuery struct {
	Page   int
	Limit  int
	Status model.OrderStatus
}

type AdminRepository interface {
	Stats(ctx context.Context) (model.AdminStats, error)
	ListOrders(ctx context.Context, q AdminOrderListQuery) ([]model.Order, int64, error)
	ListUsers(ctx context.Context, page, limit int) ([]model.User, int64, error)
	SuspendUser(ctx context.Context, userID string) error
	ActivateUser(ctx context.Context, userID string) error
}
