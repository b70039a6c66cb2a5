package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProviderProviderRepoMock struct{ mock.Mock }

func (m *ProviderProviderRepoMock) List(ctx context.Context) ([]model.ProviderProfile, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.ProviderProfile)
	return ps, args.Error(1)
}

func (m *ProviderProviderRepoMock) FindByUserID(ctx context.Context, userID string) (model.ProviderProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(model.ProviderProfile)
	return p, args.Error(1)
}

func (m *ProviderProviderRepoMock) TopRated(ctx context.Context) ([]model.ProviderProfile, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.ProviderProfile)
	return ps, args.Error(1)
}

type ProviderMealRepoMock struct{ mock.Mock }

func (m *ProviderMealRepoMock) List(ctx context.Context, q repo.MealListQuery) ([]model.Meal, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Meal)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProviderMealRepoMock) FindByID(ctx context.Context, mealID string) (model.Meal, error) {
	panic("not used in ProviderUsecase tests")
}

func (m *ProviderMealRepoMock) Create(ctx context.Context, meal model.Meal) (model.Meal, error) {
	panic("not used in ProviderUsecase tests")
}

func (m *ProviderMealRepoMock) Update(ctx context.Context, meal model.Meal) (model.Meal, error) {
	panic("not used in ProviderUsecase tests")
}

func (m *ProviderMealRepoMock) Delete(ctx context.Context, mealID string) error {
	panic("not used in ProviderUsecase tests")
}

func (m *ProviderMealRepoMock) Suggest(ctx context.Context, q string) ([]string, error) {
	panic("not used in ProviderUsecase tests")
}

func TestProviderUsecase_GetProviderDetail_CombinesProfileAndMeals(t *testing.T) {
	providerRepo := new(ProviderProviderRepoMock)
	providerRepo.On("FindByUserID", mock.Anything, "p1").
		Return(model.ProviderProfile{UserID: "p1", RestaurantName: "Sakura"}, nil)

	mealRepo := new(ProviderMealRepoMock)
	mealRepo.On("List", mock.Anything, repo.MealListQuery{Page: 1, Limit: 100, ProviderID: "p1"}).
		Return([]model.Meal{{ID: "m1", Name: "Ramen"}}, int64(1), nil)

	uc := usecase.NewProviderUsecase(providerRepo, mealRepo)

	out, err := uc.GetProviderDetail(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Sakura", out.Profile.RestaurantName)
	assert.Len(t, out.Meals, 1)
}

func TestProviderUsecase_GetProviderDetail_ProfileFailureFailsWhole(t *testing.T) {
	providerRepo := new(ProviderProviderRepoMock)
	providerRepo.On("FindByUserID", mock.Anything, "p1").
		Return(model.ProviderProfile{}, errors.New("upstream down"))

	mealRepo := new(ProviderMealRepoMock)
	mealRepo.On("List", mock.Anything, mock.Anything).
		Return([]model.Meal{}, int64(0), nil).Maybe()

	uc := usecase.NewProviderUsecase(providerRepo, mealRepo)

	_, err := uc.GetProviderDetail(context.Background(), "p1")
	assert.Error(t, err)
}

func TestProviderUsecase_GetProviderDetail_NotFoundMapsTo404(t *testing.T) {
	providerRepo := new(ProviderProviderRepoMock)
	providerRepo.On("FindByUserID", mock.Anything, "missing").
		Return(model.ProviderProfile{}, repo.ErrNotFound)

	mealRepo := new(ProviderMealRepoMock)
	mealRepo.On("List", mock.Anything, mock.Anything).
		Return([]model.Meal{}, int64(0), nil).Maybe()

	uc := usecase.NewProviderUsecase(providerRepo, mealRepo)

	_, err := uc.GetProviderDetail(context.Background(), "missing")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestProviderUsecase_GetProviderDetail_EmptyID(t *testing.T) {
	uc := usecase.NewProviderUsecase(new(ProviderProviderRepoMock), new(ProviderMealRepoMock))

	_, err := uc.GetProviderDetail(context.Background(), "")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestProviderUsecase_MyProfile_ResolvesViaViewerID(t *testing.T) {
	providerRepo := new(ProviderProviderRepoMock)
	providerRepo.On("FindByUserID", mock.Anything, "p1").
		Return(model.ProviderProfile{UserID: "p1", RestaurantName: "Sakura"}, nil)

	uc := usecase.NewProviderUsecase(providerRepo, new(ProviderMealRepoMock))

	out, err := uc.MyProfile(context.Background(), provider)
	assert.NoError(t, err)
	assert.Equal(t, "Sakura", out.RestaurantName)
	providerRepo.AssertExpectations(t)
}

func TestProviderUsecase_ListProviders_NilBecomesEmptySlice(t *testing.T) {
	providerRepo := new(ProviderProviderRepoMock)
	providerRepo.On("List", mock.Anything).Return(nil, nil)

	uc := usecase.NewProviderUsecase(providerRepo, new(ProviderMealRepoMock))

	out, err := uc.ListProviders(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
