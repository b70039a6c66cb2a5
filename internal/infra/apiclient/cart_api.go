package apiclient

import (
	"context"
	"net/http"

	"app/internal/domain/model"
)

// /cart のwrapper。repository.CartRepository の実装。
type CartAPI struct {
	c *Client
}

func NewCartAPI(c *Client) *CartAPI {
	return &CartAPI{c: c}
}

type addCartRequest struct {
	MealID   string `json:"meal_id"`
	Quantity int64  `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (a *CartAPI) List(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := a.c.do(ctx, http.MethodGet, "/cart", nil, nil, &items, "failed to fetch cart"); err != nil {
		return nil, err
	}
	return items, nil
}

func (a *CartAPI) Add(ctx context.Context, mealID string, quantity int64) error {
	req := addCartRequest{MealID: mealID, Quantity: quantity}
	return a.c.do(ctx, http.MethodPost, "/cart", nil, req, nil, "failed to add to cart")
}

func (a *CartAPI) UpdateQuantity(ctx context.Context, itemID string, quantity int64) error {
	req := updateCartItemRequest{Quantity: quantity}
	return a.c.do(ctx, http.MethodPatch, "/cart/"+itemID, nil, req, nil, "failed to update cart item")
}

func (a *CartAPI) Remove(ctx context.Context, itemID string) error {
	return a.c.do(ctx, http.MethodDelete, "/cart/"+itemID, nil, nil, nil, "failed to remove cart item")
}

func (a *CartAPI) Clear(ctx context.Context) error {
	return a.c.do(ctx, http.MethodDelete, "/cart", nil, nil, nil, "failed to clear cart")
}
