package apiclient

import (
	"context"
	"net/http"

	"app/internal/domain/model"
)

// /provider/profile のwrapper。repository.ProviderRepository の実装。
type ProviderAPI struct {
	c *Client
}

func NewProviderAPI(c *Client) *ProviderAPI {
	return &ProviderAPI{c: c}
}

func (a *ProviderAPI) List(ctx context.Context) ([]model.ProviderProfile, error) {
	var ps []model.ProviderProfile
	if err := a.c.do(ctx, http.MethodGet, "/provider/profile", nil, nil, &ps, "failed to fetch providers"); err != nil {
		return nil, err
	}
	return ps, nil
}

func (a *ProviderAPI) FindByUserID(ctx context.Context, userID string) (model.ProviderProfile, error) {
	var p model.ProviderProfile
	if err := a.c.do(ctx, http.MethodGet, "/provider/profile/"+userID, nil, nil, &p, "failed to fetch provider profile"); err != nil {
		return model.ProviderProfile{}, err
	}
	return p, nil
}

func (a *ProviderAPI) TopRated(ctx context.Context) ([]model.ProviderProfile, error) {
	var ps []model.ProviderProfile
	if err := a.c.do(ctx, http.MethodGet, "/provider/profile/top-rated", nil, nil, &ps, "failed to fetch top rated providers"); err != nil {
		return nil, err
	}
	return ps, nil
}
