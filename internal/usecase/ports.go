package usecase

import (
	"context"
	"time"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

// EventRepository イベントを保持するポート
type EventRepository interface {
	Add(name, date, clock, recurrence string) domain.Event
	Get(index int) (domain.Event, error)
}

// ReminderScheduler リマインダーを予約するポート
type ReminderScheduler interface {
	Schedule(event domain.Event, leadMinutes int, now time.Time) (*domain.Reminder, error)
}

// EventSource 取り込み元（YAMLファイル・Google Calendarなど）のポート
type EventSource interface {
	FetchDrafts(ctx context.Context) ([]domain.EventDraft, error)
}

// EventSourceFunc 関数を EventSource として扱うためのアダプタ
type EventSourceFunc func(ctx context.Context) ([]domain.EventDraft, error)

func (f EventSourceFunc) FetchDrafts(ctx context.Context) ([]domain.EventDraft, error) {
	return f(ctx)
}
