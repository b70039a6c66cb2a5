package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/sync/errgroup"
)

type ProviderUsecase struct {
	providerRepo repo.ProviderRepository
	mealRepo     repo.MealRepository
}

func NewProviderUsecase(providerRepo repo.ProviderRepository, mealRepo repo.MealRepository) *ProviderUsecase {
	return &ProviderUsecase{
		providerRepo: providerRepo,
		mealRepo:     mealRepo,
	}
}

func (u *ProviderUsecase) ListProviders(ctx context.Context) ([]model.ProviderProfile, error) {
	ps, err := u.providerRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if ps == nil {
		ps = []model.ProviderProfile{}
	}
	return ps, nil
}

func (u *ProviderUsecase) TopRated(ctx context.Context) ([]model.ProviderProfile, error) {
	ps, err := u.providerRepo.TopRated(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if ps == nil {
		ps = []model.ProviderProfile{}
	}
	return ps, nil
}

// MyProfile はプロバイダー自身のプロフィール。専用エンドポイントは無いので
// ディレクトリの詳細取得を自分のIDで呼ぶ。
func (u *ProviderUsecase) MyProfile(ctx context.Context, viewer Viewer) (model.ProviderProfile, error) {
	p, err := u.providerRepo.FindByUserID(ctx, viewer.UserID)
	if err != nil {
		return model.ProviderProfile{}, mapRepoError(err)
	}
	return p, nil
}

type ProviderDetailOutput struct {
	Profile model.ProviderProfile `json:"profile"`
	Meals   []model.Meal          `json:"meals"`
}

// GetProviderDetail はプロフィールとそのMeal一覧を並行で取る。
func (u *ProviderUsecase) GetProviderDetail(ctx context.Context, providerID string) (ProviderDetailOutput, error) {
	if providerID == "" {
		return ProviderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out ProviderDetailOutput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.providerRepo.FindByUserID(gctx, providerID)
		if err != nil {
			return err
		}
		out.Profile = p
		return nil
	})
	g.Go(func() error {
		meals, _, err := u.mealRepo.List(gctx, repo.MealListQuery{Page: 1, Limit: 100, ProviderID: providerID})
		if err != nil {
			return err
		}
		out.Meals = meals
		return nil
	})

	if err := g.Wait(); err != nil {
		return ProviderDetailOutput{}, mapRepoError(err)
	}
	if out.Meals == nil {
		out.Meals = []model.Meal{}
	}
	return out, nil
}
