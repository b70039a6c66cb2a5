package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// /meals のwrapper。repository.MealRepository の実装。
type MealAPI struct {
	c *Client
}

func NewMealAPI(c *Client) *MealAPI {
	return &MealAPI{c: c}
}

type mealListData struct {
	Items []model.Meal `json:"items"`
	Total int64        `json:"total"`
}

func (a *MealAPI) List(ctx context.Context, q repo.MealListQuery) ([]model.Meal, int64, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Q != "" {
		query.Set("q", q.Q)
	}
	if q.CategoryID != "" {
		query.Set("category_id", q.CategoryID)
	}
	if q.ProviderID != "" {
		query.Set("provider_id", q.ProviderID)
	}

	var data mealListData
	if err := a.c.do(ctx, http.MethodGet, "/meals", query, nil, &data, "failed to fetch meals"); err != nil {
		return nil, 0, err
	}
	return data.Items, data.Total, nil
}

func (a *MealAPI) FindByID(ctx context.Context, mealID string) (model.Meal, error) {
	var m model.Meal
	if err := a.c.do(ctx, http.MethodGet, "/meals/"+mealID, nil, nil, &m, "failed to fetch meal"); err != nil {
		return model.Meal{}, err
	}
	return m, nil
}

func (a *MealAPI) Create(ctx context.Context, m model.Meal) (model.Meal, error) {
	var created model.Meal
	if err := a.c.do(ctx, http.MethodPost, "/meals", nil, m, &created, "failed to create meal"); err != nil {
		return model.Meal{}, err
	}
	return created, nil
}

func (a *MealAPI) Update(ctx context.Context, m model.Meal) (model.Meal, error) {
	var updated model.Meal
	if err := a.c.do(ctx, http.MethodPatch, "/meals/"+m.ID, nil, m, &updated, "failed to update meal"); err != nil {
		return model.Meal{}, err
	}
	return updated, nil
}

func (a *MealAPI) Delete(ctx context.Context, mealID string) error {
	return a.c.do(ctx, http.MethodDelete, "/meals/"+mealID, nil, nil, nil, "failed to delete meal")
}

func (a *MealAPI) Suggest(ctx context.Context, q string) ([]string, error) {
	query := url.Values{}
	query.Set("q", q)

	var suggestions []string
	if err := a.c.do(ctx, http.MethodGet, "/meals/suggestions", query, nil, &suggestions, "failed to fetch suggestions"); err != nil {
		return nil, err
	}
	return suggestions, nil
}
