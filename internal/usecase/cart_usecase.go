package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"app/internal/domain/model"
	"app/internal/events"
	repo "app/internal/repository"
)

// 店名が非正規化されていない明細のグルーピング先。
const unknownRestaurant = "Unknown Restaurant"

// CartUsecase は /cart の業務ロジック。
// すべての変更操作は外部APIへの反映後にカート全体をリロードして返す
// （サーバー計算の合計とのズレを防ぐため、楽観的なローカルパッチはしない）。
type CartUsecase struct {
	cartRepo repo.CartRepository
	mealRepo repo.MealRepository
	bus      *events.Bus
	log      *slog.Logger

	deliveryFee int64
	taxAmount   int64

	guard *reloadGuard

	mu     sync.Mutex
	latest map[string]CartResponse // viewerIDごとの確定済みスナップショット
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	mealRepo repo.MealRepository,
	bus *events.Bus,
	log *slog.Logger,
	deliveryFee int64,
	taxAmount int64,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		mealRepo:    mealRepo,
		bus:         bus,
		log:         log,
		deliveryFee: deliveryFee,
		taxAmount:   taxAmount,
		guard:       newReloadGuard(),
		latest:      make(map[string]CartResponse),
	}
}

type CartItemView struct {
	ID             string `json:"id"`
	MealID         string `json:"meal_id"`
	Name           string `json:"name"`
	UnitPrice      int64  `json:"unit_price"`
	Quantity       int64  `json:"quantity"`
	ImageURL       string `json:"image_url"`
	RestaurantName string `json:"restaurant_name"`
	LineTotal      int64  `json:"line_total"`
}

type CartGroup struct {
	RestaurantName string         `json:"restaurant_name"`
	Items          []CartItemView `json:"items"`
	GroupTotal     int64          `json:"group_total"`
}

type CartResponse struct {
	Items       []CartItemView `json:"items"`
	Groups      []CartGroup    `json:"groups"`
	Subtotal    int64          `json:"subtotal"`
	DeliveryFee int64          `json:"delivery_fee"`
	Tax         int64          `json:"tax"`
	Total       int64          `json:"total"`
}

type AddCartInput struct {
	MealID   string
	Quantity int64
}

func (u *CartUsecase) GetCart(ctx context.Context, viewerID string) (CartResponse, error) {
	return u.reload(ctx, viewerID)
}

// AddItem はカートに追加。Mealの提供可否をチェックしてから追加する
// （UI側の防御で、最終的な権威はサーバー側）。
func (u *CartUsecase) AddItem(ctx context.Context, viewerID string, in AddCartInput) (CartResponse, error) {
	if in.MealID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid meal_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	m, err := u.mealRepo.FindByID(ctx, in.MealID)
	if err != nil {
		return CartResponse{}, mapRepoError(err)
	}
	if !m.IsAvailable {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "meal not available")
	}

	if err := u.cartRepo.Add(ctx, in.MealID, in.Quantity); err != nil {
		return CartResponse{}, mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicCartUpdated, UserID: viewerID})
	return u.reload(ctx, viewerID)
}

// IncrementItem は数量+1。上限はクライアント側では設けない。
func (u *CartUsecase) IncrementItem(ctx context.Context, viewerID string, itemID string) (CartResponse, error) {
	item, err := u.findItem(ctx, itemID)
	if err != nil {
		return CartResponse{}, err
	}

	if err := u.cartRepo.UpdateQuantity(ctx, itemID, item.Quantity+1); err != nil {
		return CartResponse{}, mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicCartUpdated, UserID: viewerID})
	return u.reload(ctx, viewerID)
}

// DecrementItem は数量-1。数量1のときは何もしない（0にするには削除を使う）。
func (u *CartUsecase) DecrementItem(ctx context.Context, viewerID string, itemID string) (CartResponse, error) {
	item, err := u.findItem(ctx, itemID)
	if err != nil {
		return CartResponse{}, err
	}

	if item.Quantity <= 1 {
		//数量1で据え置き。外部APIは呼ばない
		return u.reload(ctx, viewerID)
	}

	if err := u.cartRepo.UpdateQuantity(ctx, itemID, item.Quantity-1); err != nil {
		return CartResponse{}, mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicCartUpdated, UserID: viewerID})
	return u.reload(ctx, viewerID)
}

func (u *CartUsecase) RemoveItem(ctx context.Context, viewerID string, itemID string) (CartResponse, error) {
	if itemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.cartRepo.Remove(ctx, itemID); err != nil {
		return CartResponse{}, mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicCartUpdated, UserID: viewerID})
	return u.reload(ctx, viewerID)
}

func (u *CartUsecase) ClearCart(ctx context.Context, viewerID string) (CartResponse, error) {
	if err := u.cartRepo.Clear(ctx); err != nil {
		return CartResponse{}, mapRepoError(err)
	}

	u.bus.Publish(events.Event{Topic: events.TopicCartUpdated, UserID: viewerID})
	return u.reload(ctx, viewerID)
}

func (u *CartUsecase) findItem(ctx context.Context, itemID string) (model.CartItem, error) {
	if itemID == "" {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	items, err := u.cartRepo.List(ctx)
	if err != nil {
		return model.CartItem{}, mapRepoError(err)
	}
	for _, it := range items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return model.CartItem{}, NewHTTPError(http.StatusNotFound, "not found")
}

// reload は外部APIからカート全体を取り直す。
// シーケンス番号で守り、完了順が前後した古い結果は破棄して最新の確定分を返す。
func (u *CartUsecase) reload(ctx context.Context, viewerID string) (CartResponse, error) {
	seq := u.guard.begin(viewerID)

	items, err := u.cartRepo.List(ctx)
	if err != nil {
		return CartResponse{}, mapRepoError(err)
	}

	resp := u.buildCartResponse(items)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.guard.commit(viewerID, seq) {
		if len(resp.Items) == 0 {
			//空カートはエントリごと破棄する（マップは中身のあるカートの分しか持たない）
			delete(u.latest, viewerID)
		} else {
			u.latest[viewerID] = resp
		}
		return resp, nil
	}
	//古いリロード。確定済みの新しい方を返す
	return u.latest[viewerID], nil
}

// 明細リストからグルーピングと合計を作る純粋な畳み込み。
// グループは店名の初出順、グループ内は挿入順を保つ。
func (u *CartUsecase) buildCartResponse(items []model.CartItem) CartResponse {
	views := make([]CartItemView, 0, len(items))
	groups := make([]CartGroup, 0)
	groupIdx := make(map[string]int)

	var subtotal int64 = 0

	for _, it := range items {
		name := it.RestaurantName
		if name == "" {
			name = unknownRestaurant
		}

		lineTotal := it.UnitPrice * it.Quantity
		v := CartItemView{
			ID:             it.ID,
			MealID:         it.MealID,
			Name:           it.MealName,
			UnitPrice:      it.UnitPrice,
			Quantity:       it.Quantity,
			ImageURL:       it.ImageURL,
			RestaurantName: name,
			LineTotal:      lineTotal,
		}
		views = append(views, v)
		subtotal += lineTotal

		i, ok := groupIdx[name]
		if !ok {
			groups = append(groups, CartGroup{RestaurantName: name})
			i = len(groups) - 1
			groupIdx[name] = i
		}
		groups[i].Items = append(groups[i].Items, v)
		groups[i].GroupTotal += lineTotal
	}

	return CartResponse{
		Items:       views,
		Groups:      groups,
		Subtotal:    subtotal,
		DeliveryFee: u.deliveryFee,
		Tax:         u.taxAmount,
		Total:       subtotal + u.deliveryFee + u.taxAmount,
	}
}
