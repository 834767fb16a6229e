package gateway

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

// BeepNotifier 端末のベル音とメッセージでリマインダーを知らせるNotificationSinkの実装
type BeepNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBeepNotifier 出力先を指定してベル通知を作成
func NewBeepNotifier(out io.Writer) *BeepNotifier {
	return &BeepNotifier{out: out}
}

// Notify ベル文字とリマインダーメッセージを書き出す
func (n *BeepNotifier) Notify(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// 複数のリマインダーが同時に満了しても行が混ざらないようにする
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintf(n.out, "\a\nReminder: Time to attend your event! %s (%s %s)\n", event.Name, event.Date, event.Time)
	if err != nil {
		return fmt.Errorf("ベル通知の出力に失敗しました: %w", err)
	}
	return nil
}
