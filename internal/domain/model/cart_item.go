package model

// カートの明細。
// 価格や店名は外部APIが現在のMealから非正規化して返す（注文前なのでスナップショットではない）。
type CartItem struct {
	ID             string `json:"id"`
	MealID         string `json:"meal_id"`
	Quantity       int64  `json:"quantity"`
	MealName       string `json:"meal_name"`
	UnitPrice      int64  `json:"unit_price"`
	ImageURL       string `json:"image_url"`
	RestaurantName string `json:"restaurant_name"`
}
