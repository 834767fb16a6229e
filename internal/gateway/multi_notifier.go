package gateway

import (
	"context"
	"errors"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/reminder"
)

// MultiNotifier 複数の通知先へ順に通知する
//
// 1つが失敗しても残りには通知し、エラーはまとめて返す。
type MultiNotifier struct {
	sinks []reminder.NotificationSink
}

// NewMultiNotifier 通知先をまとめる
func NewMultiNotifier(sinks ...reminder.NotificationSink) *MultiNotifier {
	return &MultiNotifier{sinks: sinks}
}

func (m *MultiNotifier) Notify(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len 通知先の数
func (m *MultiNotifier) Len() int {
	return len(m.sinks)
}
