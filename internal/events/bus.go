package events

import "sync"

type Topic string

const (
	// カート変更後に毎回発火する（追加・数量変更・削除・クリア・注文確定後のクリア）。
	TopicCartUpdated Topic = "cart.updated"
	// Mealの作成・更新・削除後に発火する。
	TopicMealChanged Topic = "meal.changed"
)

type Event struct {
	Topic  Topic
	UserID string
	MealID string
}

// Bus はプロセス内の型付きpublish/subscribe。
// 同期fan-outで、複数リスナー間の呼び出し順は保証しない。
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic]map[int]func(Event)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]func(Event))}
}

// Subscribe はリスナーを登録して解除用の関数を返す。
func (b *Bus) Subscribe(topic Topic, fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(Event))
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subs[ev.Topic]))
	for _, fn := range b.subs[ev.Topic] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
