package model

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// 進捗バーで使う正順シーケンス。CANCELLEDはここに含まれない。
var progressSequence = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
}

// Ordinal は進捗バー上の位置。CANCELLEDと未知のステータスは -1。
func (s OrderStatus) Ordinal() int {
	for i, st := range progressSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal は以降の遷移が一切できないステータスかどうか。
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// 表示用メタデータ（固定のルックアップテーブル）。
type StatusInfo struct {
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var statusInfos = map[OrderStatus]StatusInfo{
	OrderStatusPlaced:    {Label: "Placed", Color: "blue", Description: "Your order has been placed"},
	OrderStatusPreparing: {Label: "Preparing", Color: "orange", Description: "The restaurant is preparing your order"},
	OrderStatusReady:     {Label: "Ready", Color: "teal", Description: "Your order is ready for delivery"},
	OrderStatusDelivered: {Label: "Delivered", Color: "green", Description: "Your order has been delivered"},
	OrderStatusCancelled: {Label: "Cancelled", Color: "red", Description: "This order was cancelled"},
}

func (s OrderStatus) Info() StatusInfo {
	return statusInfos[s]
}

// ロール別の遷移テーブル。ADMINはPROVIDERと同じテーブルを使う。
// サーバー側（外部API）が最終的な権威で、ここは操作メニューの出し分け用。
var customerTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced: {OrderStatusCancelled},
}

var providerTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:    {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered},
}

// AllowedTransitions は role から見て現在可能な遷移先を返す。
func AllowedTransitions(s OrderStatus, role Role) []OrderStatus {
	table := customerTransitions
	if role == RoleProvider || role == RoleAdmin {
		table = providerTransitions
	}

	next := table[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition は from→to が role にとって正当な遷移かどうか。
func CanTransition(from, to OrderStatus, role Role) bool {
	for _, st := range AllowedTransitions(from, role) {
		if st == to {
			return true
		}
	}
	return false
}
