package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/sync/errgroup"
)

type AdminUsecase struct {
	adminRepo repo.AdminRepository
}

func NewAdminUsecase(adminRepo repo.AdminRepository) *AdminUsecase {
	return &AdminUsecase{adminRepo: adminRepo}
}

type DashboardOutput struct {
	Stats        model.AdminStats `json:"stats"`
	RecentOrders []OrderView      `json:"recent_orders"`
}

// Dashboard は集計値と直近の注文を並行で取ってまとめる。
func (u *AdminUsecase) Dashboard(ctx context.Context) (DashboardOutput, error) {
	var out DashboardOutput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := u.adminRepo.Stats(gctx)
		if err != nil {
			return err
		}
		out.Stats = stats
		return nil
	})
	g.Go(func() error {
		orders, _, err := u.adminRepo.ListOrders(gctx, repo.AdminOrderListQuery{Page: 1, Limit: 10})
		if err != nil {
			return err
		}
		out.RecentOrders = make([]OrderView, 0, len(orders))
		for _, o := range orders {
			out.RecentOrders = append(out.RecentOrders, toOrderView(o, model.RoleAdmin))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardOutput{}, mapRepoError(err)
	}
	return out, nil
}

type AdminOrderListInput struct {
	Page   int
	Limit  int
	Status model.OrderStatus
}

type AdminOrderListOutput struct {
	Items []OrderView `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func (u *AdminUsecase) ListOrders(ctx context.Context, in AdminOrderListInput) (AdminOrderListOutput, error) {
	if in.Page < 1 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if in.Status != "" && in.Status.Info().Label == "" {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.adminRepo.ListOrders(ctx, repo.AdminOrderListQuery{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
	})
	if err != nil {
		return AdminOrderListOutput{}, mapRepoError(err)
	}

	items := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderView(o, model.RoleAdmin))
	}
	return AdminOrderListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

type AdminUserListOutput struct {
	Items []model.User `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (u *AdminUsecase) ListUsers(ctx context.Context, page, limit int) (AdminUserListOutput, error) {
	if page < 1 {
		return AdminUserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return AdminUserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	users, total, err := u.adminRepo.ListUsers(ctx, page, limit)
	if err != nil {
		return AdminUserListOutput{}, mapRepoError(err)
	}
	if users == nil {
		users = []model.User{}
	}
	return AdminUserListOutput{Items: users, Total: total, Page: page, Limit: limit}, nil
}

func (u *AdminUsecase) SuspendUser(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if err := u.adminRepo.SuspendUser(ctx, userID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func (u *AdminUsecase) ActivateUser(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if err := u.adminRepo.ActivateUser(ctx, userID); err != nil {
		return mapRepoError(err)
	}
	return nil
}
