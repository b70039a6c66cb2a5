package model

// 注文の明細。
// 注文確定時点の価格・名前を必ずスナップショットで保持する（後からMealの価格が変わっても不変）。
type OrderItem struct {
	ID                string `json:"id"`
	MealID            string `json:"meal_id"`
	Quantity          int64  `json:"quantity"`
	UnitPriceSnapshot int64  `json:"unit_price_snapshot"`
	MealNameSnapshot  string `json:"meal_name_snapshot"`
	ImageURL          string `json:"image_url"`
}
