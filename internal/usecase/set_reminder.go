package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

// SetReminderUseCase 一覧から選んだイベントにリマインダーを設定するユースケース
type SetReminderUseCase struct {
	repo      EventRepository
	scheduler ReminderScheduler
}

// NewSetReminderUseCase ユースケースを生成
func NewSetReminderUseCase(repo EventRepository, scheduler ReminderScheduler) *SetReminderUseCase {
	return &SetReminderUseCase{
		repo:      repo,
		scheduler: scheduler,
	}
}

// Execute 1始まりの表示番号と「何分前」の入力からリマインダーを予約する
func (uc *SetReminderUseCase) Execute(index int, leadMinutes string, now time.Time) (*domain.Reminder, error) {
	event, err := uc.repo.Get(index)
	if err != nil {
		return nil, err
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(leadMinutes))
	if err != nil {
		return nil, fmt.Errorf("%w: %q は数値で入力してください", domain.ErrInvalidLeadTime, leadMinutes)
	}

	return uc.scheduler.Schedule(event, minutes, now)
}
