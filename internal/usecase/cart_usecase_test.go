package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"app/internal/domain/model"
	"app/internal/events"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CartCartRepoMock struct{ mock.Mock }

func (m *CartCartRepoMock) List(ctx context.Context) ([]model.CartItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartCartRepoMock) Add(ctx context.Context, mealID string, quantity int64) error {
	args := m.Called(ctx, mealID, quantity)
	return args.Error(0)
}

func (m *CartCartRepoMock) UpdateQuantity(ctx context.Context, itemID string, quantity int64) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *CartCartRepoMock) Remove(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *CartCartRepoMock) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type CartMealRepoMock struct{ mock.Mock }

func (m *CartMealRepoMock) List(ctx context.Context, q repo.MealListQuery) ([]model.Meal, int64, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartMealRepoMock) FindByID(ctx context.Context, mealID string) (model.Meal, error) {
	args := m.Called(ctx, mealID)
	meal, _ := args.Get(0).(model.Meal)
	return meal, args.Error(1)
}

func (m *CartMealRepoMock) Create(ctx context.Context, meal model.Meal) (model.Meal, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartMealRepoMock) Update(ctx context.Context, meal model.Meal) (model.Meal, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartMealRepoMock) Delete(ctx context.Context, mealID string) error {
	panic("not used in CartUsecase tests")
}

func (m *CartMealRepoMock) Suggest(ctx context.Context, q string) ([]string, error) {
	panic("not used in CartUsecase tests")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCartUsecase(cartRepo *CartCartRepoMock, mealRepo *CartMealRepoMock, fee, tax int64) *usecase.CartUsecase {
	return usecase.NewCartUsecase(cartRepo, mealRepo, events.NewBus(), discardLogger(), fee, tax)
}

// =====================
// 合計とグルーピング
// =====================

func TestCartUsecase_GetCart_Totals(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("List", mock.Anything).Return([]model.CartItem{
		{ID: "i1", MealID: "m1", UnitPrice: 100, Quantity: 2, RestaurantName: "Sakura"},
		{ID: "i2", MealID: "m2", UnitPrice: 50, Quantity: 1, RestaurantName: "Sakura"},
	}, nil)

	uc := newCartUsecase(cartRepo, new(CartMealRepoMock), 0, 0)

	out, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(250), out.Subtotal)
	assert.Equal(t, int64(0), out.DeliveryFee)
	assert.Equal(t, int64(0), out.Tax)
	assert.Equal(t, int64(250), out.Total)
	assert.Equal(t, int64(200), out.Items[0].LineTotal)
}

func TestCartUsecase_GetCart_DeliveryFeeAndTaxFromConfig(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("List", mock.Anything).Return([]model.CartItem{
		{ID: "i1", MealID: "m1", UnitPrice: 100, Quantity: 1, RestaurantName: "Sakura"},
	}, nil)

	uc := newCartUsecase(cartRepo, new(CartMealRepoMock), 30, 10)

	out, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(100), out.Subtotal)
	assert.Equal(t, int64(140), out.Total)
}

func TestCartUsecase_GetCart_GroupsByRestaurantFirstSeenOrder(t *testing.T) {
	ctx := context.Background()

	items := []model.CartItem{
		{ID: "i1", UnitPrice: 100, Quantity: 1, RestaurantName: "Sakura"},
		{ID: "i2", UnitPrice: 200, Quantity: 1, RestaurantName: "Momiji"},
		{ID: "i3", UnitPrice: 50, Quantity: 2, RestaurantName: "Sakura"},
		{ID: "i4", UnitPrice: 80, Quantity: 1, RestaurantName: ""},
	}

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("List", mock.Anything).Return(items, nil)

	uc := newCartUsecase(cartRepo, new(CartMealRepoMock), 0, 0)

	out, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)

	//初出順にグループが並ぶ
	assert.Equal(t, 3, len(out.Groups))
	assert.Equal(t, "Sakura", out.Groups[0].RestaurantName)
	assert.Equal(t, "Momiji", out.Groups[1].RestaurantName)
	assert.Equal(t, "Unknown Restaurant", out.Groups[2].RestaurantName)

	//グループ内は挿入順
	assert.Equal(t, "i1", out.Groups[0].Items[0].ID)
	assert.Equal(t, "i3", out.Groups[0].Items[1].ID)

	//グループ合計の総和 == subtotal
	var groupSum int64
	for _, g := range out.Groups {
		groupSum += g.GroupTotal
	}
	assert.Equal(t, out.Subtotal, groupSum)

	//同じ入力なら同じ結果（再グルーピングで冪等）
	out2, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, out, out2)
}

// =====================
// 数量変更
// =====================

func TestCartUsecase_DecrementItem_AtOneIsNoop(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("List", mock.Anything).Return([]model.CartItem{
		{ID: "i1", MealID: "m1", UnitPrice: 100, Quantity: 1, RestaurantName: "Sakura"},
	}, nil)

	uc := newCartUsecase(cartRepo, new(CartMealRepoMock), 0, 0)

	out, err := uc.DecrementItem(ctx, "u1", "i1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Items[0].Quantity)

	//数量1からの減算は外部APIを呼ばない
	cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_DecrementItem_CallsUpstreamAboveOne(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("List", mock.Anything).Return([]model.CartItem{
		{ID: "i1", MealID: "m1", UnitPrice: 100, Quantity: 3, RestaurantName: "Sakura"},
	}, nil)
	cartRepo.On("UpdateQuantity", mock.Anything, "i1", int64(2)).Return(nil)

	uc := newCartUsecase(cartRepo, new(CartMealRepoMock), 0, 0)

	_, err := uc.DecrementItem(ctx, "u1", "i1")
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_IncrementItem_NoUpperBound(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("List", mock.Anything).Return([]model.CartItem{
		{ID: "i1", MealID: "m1", UnitPrice: 100, Quantity: 99, RestaurantName: "Sakura"},
	}, nil)
	cartRepo.On("UpdateQuantity", mock.Anything, "i1", int64(100)).Return(nil)

	uc := newCartUsecase(cartRepo, new(CartMealRepoMock), 0, 0)

	_, err := uc.IncrementItem(ctx, "u1", "i1")
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_IncrementItem_NotFound(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("List", mock.Anything).Return([]model.CartItem{}, nil)

	uc := newCartUsecase(cartRepo, new(CartMealRepoMock), 0, 0)

	_, err := uc.IncrementItem(ctx, "u1", "missing")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

// =====================
// 追加
// =====================

func TestCartUsecase_AddItem_RejectsUnavailableMeal(t *testing.T) {
	ctx := context.Background()

	mealRepo := new(CartMealRepoMock)
	mealRepo.On("FindByID", mock.Anything, "m1").Return(model.Meal{ID: "m1", IsAvailable: false}, nil)

	cartRepo := new(CartCartRepoMock)
	uc := newCartUsecase(cartRepo, mealRepo, 0, 0)

	_, err := uc.AddItem(ctx, "u1", usecase.AddCartInput{MealID: "m1", Quantity: 1})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "meal not available", he.Message)

	cartRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc := newCartUsecase(new(CartCartRepoMock), new(CartMealRepoMock), 0, 0)

	_, err := uc.AddItem(context.Background(), "u1", usecase.AddCartInput{MealID: "m1", Quantity: 0})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_AddItem_PublishesCartUpdated(t *testing.T) {
	ctx := context.Background()

	mealRepo := new(CartMealRepoMock)
	mealRepo.On("FindByID", mock.Anything, "m1").Return(model.Meal{ID: "m1", IsAvailable: true}, nil)

	cartRepo := new(CartCartRepoMock)
	cartRepo.On("Add", mock.Anything, "m1", int64(2)).Return(nil)
	cartRepo.On("List", mock.Anything).Return([]model.CartItem{
		{ID: "i1", MealID: "m1", UnitPrice: 100, Quantity: 2, RestaurantName: "Sakura"},
	}, nil)

	bus := events.NewBus()
	var published []events.Event
	bus.Subscribe(events.TopicCartUpdated, func(ev events.Event) {
		published = append(published, ev)
	})

	uc := usecase.NewCartUsecase(cartRepo, mealRepo, bus, discardLogger(), 0, 0)

	_, err := uc.AddItem(ctx, "u1", usecase.AddCartInput{MealID: "m1", Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(published))
	assert.Equal(t, "u1", published[0].UserID)
}
