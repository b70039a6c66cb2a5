package apiclient

import (
	"context"
	"net/http"

	"app/internal/domain/model"
)

// /reviews のwrapper。repository.ReviewRepository の実装。
type ReviewAPI struct {
	c *Client
}

func NewReviewAPI(c *Client) *ReviewAPI {
	return &ReviewAPI{c: c}
}

func (a *ReviewAPI) ListByMealID(ctx context.Context, mealID string) ([]model.Review, error) {
	var rs []model.Review
	if err := a.c.do(ctx, http.MethodGet, "/reviews/meals/"+mealID, nil, nil, &rs, "failed to fetch reviews"); err != nil {
		return nil, err
	}
	return rs, nil
}

func (a *ReviewAPI) Create(ctx context.Context, r model.Review) (model.Review, error) {
	var created model.Review
	if err := a.c.do(ctx, http.MethodPost, "/reviews", nil, r, &created, "failed to create review"); err != nil {
		return model.Review{}, err
	}
	return created, nil
}

func (a *ReviewAPI) Update(ctx context.Context, r model.Review) (model.Review, error) {
	var updated model.Review
	if err := a.c.do(ctx, http.MethodPatch, "/reviews/"+r.ID, nil, r, &updated, "failed to update review"); err != nil {
		return model.Review{}, err
	}
	return updated, nil
}

func (a *ReviewAPI) Delete(ctx context.Context, reviewID string) error {
	return a.c.do(ctx, http.MethodDelete, "/reviews/"+reviewID, nil, nil, nil, "failed to delete review")
}
