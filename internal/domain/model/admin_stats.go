package model

// 管理ダッシュボードの集計値（外部APIが計算済みのものを返す）。
type AdminStats struct {
	TotalUsers     int64                 `json:"total_users"`
	TotalOrders    int64                 `json:"total_orders"`
	TotalMeals     int64                 `json:"total_meals"`
	TotalRevenue   int64                 `json:"total_revenue"`
	OrdersByStatus map[OrderStatus]int64 `json:"orders_by_status"`
}
