package usecase

import "app/internal/domain/model"

// Viewer は認証済みの操作主体。ロールで操作メニューの出し分けが変わる。
type Viewer struct {
	UserID string
	Role   model.Role
}
