// Package reminder イベント開始前に一度だけ通知するリマインダーのスケジューラ
package reminder

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/logger"
	"github.com/k-negishi/academic-calendar-reminder/internal/validator"
)

// DefaultNotifyTimeout 通知1件あたりの待ち時間上限
const DefaultNotifyTimeout = 30 * time.Second

const maxLeadMinutes = math.MaxInt64 / int64(time.Minute)

// NotificationSink 通知を実際に行うポート（音・画面・LINEなど）
type NotificationSink interface {
	Notify(ctx context.Context, event domain.Event) error
}

// Timer 待機中のタイマー
type Timer interface {
	Stop() bool
}

// Scheduler リマインダーごとに独立したタイマーを張るスケジューラ
//
// Schedule は検証後すぐに戻り、待機はタイマーのゴルーチン側で行う。
// タイマーはプロセス終了を妨げない。
type Scheduler struct {
	sink          NotificationSink
	logger        *logger.Logger
	notifyTimeout time.Duration
	afterFunc     func(d time.Duration, f func()) Timer
	newID         func() string

	mu        sync.RWMutex
	reminders map[string]*domain.Reminder
	timers    map[string]Timer
}

// NewScheduler スケジューラを作成
func NewScheduler(sink NotificationSink, log *logger.Logger, notifyTimeout time.Duration) *Scheduler {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &Scheduler{
		sink:          sink,
		logger:        log.With("component", "reminder"),
		notifyTimeout: notifyTimeout,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		newID:     uuid.NewString,
		reminders: make(map[string]*domain.Reminder),
		timers:    make(map[string]Timer),
	}
}

// Schedule イベント開始の leadMinutes 分前に一度だけ通知するよう予約
//
// 検証エラー時はリマインダーを作らず、タイマーも張らない。
func (s *Scheduler) Schedule(event domain.Event, leadMinutes int, now time.Time) (*domain.Reminder, error) {
	if leadMinutes < 0 {
		return nil, fmt.Errorf("%w: %d分は指定できません", domain.ErrInvalidLeadTime, leadMinutes)
	}

	eventAt, err := validator.EventInstant(event)
	if err != nil {
		// 登録時に検証済みのはずなので、ここで失敗するのは整合性の崩れ
		return nil, fmt.Errorf("保存済みイベント %q の日時を解析できません: %w", event.ID, err)
	}

	if int64(leadMinutes) > maxLeadMinutes {
		return nil, fmt.Errorf("%w: %d分前は扱える範囲を超えています", domain.ErrReminderInPast, leadMinutes)
	}
	fireAt := eventAt.Add(-time.Duration(leadMinutes) * time.Minute)
	if !fireAt.After(now) {
		return nil, fmt.Errorf("%w: %s のリマインダー時刻 %s", domain.ErrReminderInPast, event.Date, fireAt.Format("2006-01-02 15:04"))
	}

	r := domain.NewReminder(s.newID(), event, leadMinutes, fireAt)

	s.mu.Lock()
	s.reminders[r.ID] = r
	s.mu.Unlock()

	timer := s.afterFunc(fireAt.Sub(now), func() { s.fire(r) })

	s.mu.Lock()
	if r.State() == domain.ReminderPending {
		s.timers[r.ID] = timer
	}
	s.mu.Unlock()

	s.logger.Info("reminder scheduled",
		"reminder_id", r.ID,
		"event", event.Name,
		"event_date", event.Date,
		"event_time", event.Time,
		"fire_at", fireAt.Format(time.RFC3339),
	)
	return r, nil
}

// fire タイマー満了時に通知を1回だけ行う
func (s *Scheduler) fire(r *domain.Reminder) {
	defer r.Finish()
	if !r.MarkFired() {
		return
	}

	s.mu.Lock()
	delete(s.timers, r.ID)
	s.mu.Unlock()

	// 通知側の失敗は他のリマインダーに影響させない
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("notification panicked", "reminder_id", r.ID, "panic", fmt.Sprint(p))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	if err := s.sink.Notify(ctx, r.Event); err != nil {
		s.logger.Warn("notification failed", "reminder_id", r.ID, "event", r.Event.Name, "error", err)
		return
	}
	s.logger.Info("reminder fired", "reminder_id", r.ID, "event", r.Event.Name)
}

// Get ID でリマインダーを取得
func (s *Scheduler) Get(id string) (*domain.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reminders[id]
	return r, ok
}

// Reminders 予約済みリマインダーを通知時刻順に返す
func (s *Scheduler) Reminders() []*domain.Reminder {
	s.mu.RLock()
	out := make([]*domain.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out
}

// Pending 未通知のリマインダー件数
func (s *Scheduler) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.reminders {
		if r.State() == domain.ReminderPending {
			n++
		}
	}
	return n
}
