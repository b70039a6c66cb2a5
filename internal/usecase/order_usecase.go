package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/events"
	repo "app/internal/repository"

	"github.com/go-playground/validator/v10"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	cartRepo  repo.CartRepository
	bus       *events.Bus
	log       *slog.Logger
	validate  *validator.Validate
	idGen     func() string
}

func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	cartRepo repo.CartRepository,
	bus *events.Bus,
	log *slog.Logger,
	idGen func() string,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bus:       bus,
		log:       log,
		validate:  validator.New(),
		idGen:     idGen,
	}
}

type CheckoutInput struct {
	DeliveryAddress string `validate:"required"`
	Phone           string `validate:"required"`
	Notes           string
}

type OrderItemView struct {
	ID        string `json:"id"`
	MealID    string `json:"meal_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	ImageURL  string `json:"image_url"`
	LineTotal int64  `json:"line_total"`
}

type OrderView struct {
	ID              string              `json:"id"`
	Status          model.OrderStatus   `json:"status"`
	StatusInfo      model.StatusInfo    `json:"status_info"`
	ProgressOrdinal int                 `json:"progress_ordinal"`
	AllowedActions  []model.OrderStatus `json:"allowed_actions"`
	TotalAmount     int64               `json:"total_amount"`
	DeliveryAddress string              `json:"delivery_address"`
	Phone           string              `json:"phone"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []OrderItemView     `json:"items"`
}

// Checkout は注文を確定する。
// ペイロードは {meal_id, quantity} と配送先情報のみで、価格はクライアントから送らない。
// 注文成功後のカートクリアはベストエフォート（失敗してもログだけ残して注文成功を返す）。
func (u *OrderUsecase) Checkout(ctx context.Context, viewer Viewer, in CheckoutInput) (OrderView, error) {
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	in.Phone = strings.TrimSpace(in.Phone)

	//外部API呼び出しの前に入力チェック
	if err := u.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "DeliveryAddress" {
			return OrderView{}, NewHTTPError(http.StatusBadRequest, "delivery address is required")
		}
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "phone is required")
	}

	items, err := u.cartRepo.List(ctx)
	if err != nil {
		return OrderView{}, mapRepoError(err)
	}
	if len(items) == 0 {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	orderItems := make([]repo.CreateOrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, repo.CreateOrderItem{
			MealID:   it.MealID,
			Quantity: it.Quantity,
		})
	}

	order, err := u.orderRepo.Create(ctx, repo.CreateOrderInput{
		Items:           orderItems,
		DeliveryAddress: in.DeliveryAddress,
		Phone:           in.Phone,
		Notes:           strings.TrimSpace(in.Notes),
		IdempotencyKey:  u.idGen(),
	})
	if err != nil {
		return OrderView{}, mapRepoError(err)
	}

	//注文自体は成功しているのでクリア失敗は握りつぶす
	if err := u.cartRepo.Clear(ctx); err != nil {
		u.log.Warn("cart clear after checkout failed", "order_id", order.ID, "error", err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicCartUpdated, UserID: viewer.UserID})
	return toOrderView(order, viewer.Role), nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, viewer Viewer) ([]OrderView, error) {
	orders, err := u.orderRepo.ListMine(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}

	outs := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderView(o, viewer.Role))
	}
	return outs, nil
}

func (u *OrderUsecase) GetOrderDetail(ctx context.Context, viewer Viewer, orderID string) (OrderView, error) {
	if orderID == "" {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return OrderView{}, mapRepoError(err)
	}
	return toOrderView(o, viewer.Role), nil
}

// CancelOrder は顧客のキャンセル。PLACEDの間だけ許可される。
func (u *OrderUsecase) CancelOrder(ctx context.Context, viewer Viewer, orderID string) (OrderView, error) {
	if orderID == "" {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return OrderView{}, mapRepoError(err)
	}
	if !model.CanTransition(o.Status, model.OrderStatusCancelled, viewer.Role) {
		return OrderView{}, NewHTTPError(http.StatusConflict, "order can no longer be cancelled")
	}

	cancelled, err := u.orderRepo.Cancel(ctx, orderID)
	if err != nil {
		return OrderView{}, mapRepoError(err)
	}
	return toOrderView(cancelled, viewer.Role), nil
}

// UpdateStatus はプロバイダー/管理者のステータス遷移。
// 遷移テーブルにない遷移はここで弾くが、最終的な権威は外部API側。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, viewer Viewer, orderID string, to model.OrderStatus) (OrderView, error) {
	if orderID == "" {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if to.Info().Label == "" {
		return OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return OrderView{}, mapRepoError(err)
	}
	if !model.CanTransition(o.Status, to, viewer.Role) {
		return OrderView{}, NewHTTPError(http.StatusConflict, "illegal status transition")
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, orderID, to)
	if err != nil {
		return OrderView{}, mapRepoError(err)
	}
	return toOrderView(updated, viewer.Role), nil
}

func toOrderView(o model.Order, role model.Role) OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemView{
			ID:        it.ID,
			MealID:    it.MealID,
			Name:      it.MealNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
			LineTotal: it.UnitPriceSnapshot * it.Quantity,
		})
	}

	return OrderView{
		ID:              o.ID,
		Status:          o.Status,
		StatusInfo:      o.Status.Info(),
		ProgressOrdinal: o.Status.Ordinal(),
		AllowedActions:  model.AllowedTransitions(o.Status, role),
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		Phone:           o.Phone,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		Items:           items,
	}
}
