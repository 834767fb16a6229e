package domain

import (
	"sync"
	"sync/atomic"
	"time"
)

// ReminderState リマインダーの状態
type ReminderState int32

const (
	ReminderPending ReminderState = iota
	ReminderFired
)

func (s ReminderState) String() string {
	switch s {
	case ReminderPending:
		return "Pending"
	case ReminderFired:
		return "Fired"
	default:
		return "Unknown"
	}
}

// Reminder スケジュール済みリマインダーのハンドル
//
// 検証に通ったものだけが作られるため、初期状態は常に Pending。
type Reminder struct {
	ID          string
	Event       Event
	LeadMinutes int
	FireAt      time.Time

	state    atomic.Int32
	done     chan struct{}
	doneOnce sync.Once
}

// NewReminder Pending 状態のリマインダーを作成
func NewReminder(id string, event Event, leadMinutes int, fireAt time.Time) *Reminder {
	return &Reminder{
		ID:          id,
		Event:       event,
		LeadMinutes: leadMinutes,
		FireAt:      fireAt,
		done:        make(chan struct{}),
	}
}

// State 現在の状態
func (r *Reminder) State() ReminderState {
	return ReminderState(r.state.Load())
}

// MarkFired Pending から Fired へ遷移。遷移できた呼び出しだけが true を返す
func (r *Reminder) MarkFired() bool {
	return r.state.CompareAndSwap(int32(ReminderPending), int32(ReminderFired))
}

// Done 通知処理が終わると close されるチャネル
func (r *Reminder) Done() <-chan struct{} {
	return r.done
}

// Finish 通知処理の完了を記録
func (r *Reminder) Finish() {
	r.doneOnce.Do(func() { close(r.done) })
}
