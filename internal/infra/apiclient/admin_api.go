package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// /admin のwrapper。repository.AdminRepository の実装。
type AdminAPI struct {
	c *Client
}

func NewAdminAPI(c *Client) *AdminAPI {
	return &AdminAPI{c: c}
}

func (a *AdminAPI) Stats(ctx context.Context) (model.AdminStats, error) {
	var s model.AdminStats
	if err := a.c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &s, "failed to fetch admin stats"); err != nil {
		return model.AdminStats{}, err
	}
	return s, nil
}

type adminOrderListData struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
}

func (a *AdminAPI) ListOrders(ctx context.Context, q repo.AdminOrderListQuery) ([]model.Order, int64, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}

	var data adminOrderListData
	if err := a.c.do(ctx, http.MethodGet, "/admin/orders", query, nil, &data, "failed to fetch admin orders"); err != nil {
		return nil, 0, err
	}
	return data.Items, data.Total, nil
}

type adminUserListData struct {
	Items []model.User `json:"items"`
	Total int64        `json:"total"`
}

func (a *AdminAPI) ListUsers(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var data adminUserListData
	if err := a.c.do(ctx, http.MethodGet, "/admin/users", query, nil, &data, "failed to fetch users"); err != nil {
		return nil, 0, err
	}
	return data.Items, data.Total, nil
}

func (a *AdminAPI) SuspendUser(ctx context.Context, userID string) error {
	return a.c.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/suspend", nil, nil, nil, "failed to suspend user")
}

func (a *AdminAPI) ActivateUser(ctx context.Context, userID string) error {
	return a.c.do(ctx, http.MethodPatch, "/admin/users/"+userID+"/activate", nil, nil, nil, "failed to activate user")
}
