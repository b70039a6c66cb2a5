package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 外部APIがアカウント停止を示すマーカー（403 + code）を返したとき。
	// 共有のfetch層で検出して、呼び出し側に横断的に伝播させる。
	ErrSuspended = errors.New("account suspended")
)
