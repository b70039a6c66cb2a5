package apiclient

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// /orders のwrapper。repository.OrderRepository の実装。
type OrderAPI struct {
	c *Client
}

func NewOrderAPI(c *Client) *OrderAPI {
	return &OrderAPI{c: c}
}

type updateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (a *OrderAPI) ListMine(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := a.c.do(ctx, http.MethodGet, "/orders/my", nil, nil, &orders, "failed to fetch orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *OrderAPI) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	if err := a.c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, nil, &o, "failed to fetch order"); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (a *OrderAPI) Create(ctx context.Context, in repo.CreateOrderInput) (model.Order, error) {
	var o model.Order
	if err := a.c.do(ctx, http.MethodPost, "/orders", nil, in, &o, "failed to place order"); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (a *OrderAPI) Cancel(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	if err := a.c.do(ctx, http.MethodPatch, "/orders/"+orderID+"/cancel", nil, nil, &o, "failed to cancel order"); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (a *OrderAPI) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	req := updateOrderStatusRequest{Status: status}
	var o model.Order
	if err := a.c.do(ctx, http.MethodPatch, "/orders/"+orderID+"/status", nil, req, &o, "failed to update order status"); err != nil {
		return model.Order{}, err
	}
	return o, nil
}
