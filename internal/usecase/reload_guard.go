package usecase

import "sync"

// reloadGuard はユーザーごとの単調増加シーケンスでリロードの順序を守る。
// 後から発行されたリロードが先に完了した場合、古い方の結果は破棄される
// （完了順が前後しても最後に発行されたリロードが表示状態を決める）。
type reloadGuard struct {
	mu        sync.Mutex
	issued    map[string]uint64
	committed map[string]uint64
}

func newReloadGuard() *reloadGuard {
	return &reloadGuard{
		issued:    make(map[string]uint64),
		committed: make(map[string]uint64),
	}
}

// begin は新しいリロードのシーケンス番号を払い出す。
func (g *reloadGuard) begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued[key]++
	return g.issued[key]
}

// commit は結果を採用してよければtrueを返す。
// すでに新しいシーケンスが確定済みなら古い結果としてfalseを返す。
func (g *reloadGuard) commit(key string, seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq <= g.committed[key] {
		return false
	}
	g.committed[key] = seq
	return true
}
