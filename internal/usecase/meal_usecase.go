package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/cache"
	"app/internal/domain/model"
	"app/internal/events"
	repo "app/internal/repository"
)

type MealUsecase struct {
	mealRepo repo.MealRepository
	suggest  *cache.SuggestionCache
	bus      *events.Bus
}

func NewMealUsecase(mealRepo repo.MealRepository, suggest *cache.SuggestionCache, bus *events.Bus) *MealUsecase {
	return &MealUsecase{
		mealRepo: mealRepo,
		suggest:  suggest,
		bus:      bus,
	}
}

type ListMealsInput struct {
	Page       int
	Limit      int
	Q          string
	CategoryID string
	ProviderID string
}

type MealListOutput struct {
	Items []model.Meal `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (u *MealUsecase) ListMeals(ctx context.Context, in ListMealsInput) (MealListOutput, error) {
	if in.Page < 1 {
		return MealListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return MealListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return MealListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	items, total, err := u.mealRepo.List(ctx, repo.MealListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          in.Q,
		CategoryID: in.CategoryID,
		ProviderID: in.ProviderID,
	})
	if err != nil {
		return MealListOutput{}, mapRepoError(err)
	}

	if items == nil {
		items = []model.Meal{}
	}
	return MealListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *MealUsecase) GetMealDetail(ctx context.Context, mealID string) (model.Meal, error) {
	if mealID == "" {
		return model.Meal{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	m, err := u.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		return model.Meal{}, mapRepoError(err)
	}
	return m, nil
}

type MealInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"image_url"`
	DietaryTags []string `json:"dietary_tags"`
	IsAvailable bool     `json:"is_available"`
	CategoryID  string   `json:"category_id"`
}

func (u *MealUsecase) CreateMeal(ctx context.Context, viewer Viewer, in MealInput) (model.Meal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Meal{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return model.Meal{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	created, err := u.mealRepo.Create(ctx, model.Meal{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		DietaryTags: in.DietaryTags,
		IsAvailable: in.IsAvailable,
		CategoryID:  in.CategoryID,
		ProviderID:  viewer.UserID,
	})
	if err != nil {
		return model.Meal{}, mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicMealChanged, MealID: created.ID})
	return created, nil
}

func (u *MealUsecase) UpdateMeal(ctx context.Context, mealID string, in MealInput) (model.Meal, error) {
	if mealID == "" {
		return model.Meal{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Meal{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price < 0 {
		return model.Meal{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	updated, err := u.mealRepo.Update(ctx, model.Meal{
		ID:          mealID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		DietaryTags: in.DietaryTags,
		IsAvailable: in.IsAvailable,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return model.Meal{}, mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicMealChanged, MealID: mealID})
	return updated, nil
}

func (u *MealUsecase) DeleteMeal(ctx context.Context, mealID string) error {
	if mealID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.mealRepo.Delete(ctx, mealID); err != nil {
		return mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicMealChanged, MealID: mealID})
	return nil
}

// Suggestions は検索サジェスト。TTL内なら外部APIを呼ばずキャッシュを返す。
func (u *MealUsecase) Suggestions(ctx context.Context, q string) ([]string, error) {
	if q == "" {
		return []string{}, nil
	}
	//一覧検索と同じ上限。キャッシュキーがクエリそのものなので長さを抑える
	if len(q) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	if cached, ok := u.suggest.Get(q); ok {
		return cached, nil
	}

	suggestions, err := u.mealRepo.Suggest(ctx, q)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	u.suggest.Set(q, suggestions)
	return suggestions, nil
}
