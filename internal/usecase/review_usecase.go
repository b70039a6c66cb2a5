package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/go-playground/validator/v10"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
	validate   *validator.Validate
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		validate:   validator.New(),
	}
}

type ReviewInput struct {
	MealID  string `json:"meal_id" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment"`
}

func (u *ReviewUsecase) ListForMeal(ctx context.Context, mealID string) ([]model.Review, error) {
	if mealID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid meal_id")
	}

	rs, err := u.reviewRepo.ListByMealID(ctx, mealID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if rs == nil {
		rs = []model.Review{}
	}
	return rs, nil
}

func (u *ReviewUsecase) CreateReview(ctx context.Context, viewer Viewer, in ReviewInput) (model.Review, error) {
	if err := u.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "MealID" {
			return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid meal_id")
		}
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		MealID:  in.MealID,
		UserID:  viewer.UserID,
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return model.Review{}, mapRepoError(err)
	}
	return created, nil
}

func (u *ReviewUsecase) UpdateReview(ctx context.Context, reviewID string, in ReviewInput) (model.Review, error) {
	if reviewID == "" {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	//更新ではmeal_idは変えられないのでratingだけ検証する
	if err := u.validate.Var(in.Rating, "min=1,max=5"); err != nil {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	updated, err := u.reviewRepo.Update(ctx, model.Review{
		ID:      reviewID,
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return model.Review{}, mapRepoError(err)
	}
	return updated, nil
}

func (u *ReviewUsecase) DeleteReview(ctx context.Context, reviewID string) error {
	if reviewID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.reviewRepo.Delete(ctx, reviewID); err != nil {
		return mapRepoError(err)
	}
	return nil
}
