package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

// EventStore プロセス内でイベントを保持するインメモリストア
//
// 追加と参照のみで、更新・削除は提供しない。
type EventStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

// NewEventStore 空のストアを作成
func NewEventStore() *EventStore {
	return &EventStore{}
}

// Add イベントを1件追加
func (s *EventStore) Add(name, date, clock, recurrence string) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	evt := domain.Event{
		ID:         uuid.NewString(),
		Name:       name,
		Date:       date,
		Time:       clock,
		Recurrence: recurrence,
	}
	s.events = append(s.events, evt)
	return evt
}

// List 追加順のイベント一覧（コピー）を返す
func (s *EventStore) List() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Event(nil), s.events...)
}

// Get 1始まりの表示番号でイベントを取得
func (s *EventStore) Get(index int) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) == 0 {
		return domain.Event{}, domain.ErrNoEvents
	}
	if index < 1 || index > len(s.events) {
		return domain.Event{}, fmt.Errorf("%w: 番号 %d (1〜%d)", domain.ErrEventNotFound, index, len(s.events))
	}
	return s.events[index-1], nil
}

// Len 登録件数
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.events)
}
