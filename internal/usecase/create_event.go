package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/logger"
	"github.com/k-negishi/academic-calendar-reminder/internal/store"
	"github.com/k-negishi/academic-calendar-reminder/internal/validator"
)

// CreateEventUseCase イベント登録ユースケース
type CreateEventUseCase struct {
	repo   EventRepository
	logger *logger.Logger
}

// NewCreateEventUseCase ユースケースを生成
func NewCreateEventUseCase(repo EventRepository, log *logger.Logger) *CreateEventUseCase {
	return &CreateEventUseCase{
		repo:   repo,
		logger: log,
	}
}

// Execute 選択された日付ごとにイベントを1件ずつ登録する
//
// 検証はすべて登録前に行い、1日付でも失敗した場合は何も登録しない。
func (uc *CreateEventUseCase) Execute(draft domain.EventDraft, now time.Time) ([]domain.Event, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	if len(draft.Dates) == 0 {
		return nil, domain.ErrNoDatesSelected
	}

	// 日付の形式と重複を確認
	var selection store.DateSelection
	for _, date := range draft.Dates {
		if err := selection.Add(date); err != nil {
			return nil, err
		}
	}

	recurrence, err := domain.FormatRecurrence(draft.Recurrence)
	if err != nil {
		return nil, err
	}

	dates := selection.Dates()
	instants, err := validator.ValidateAll(dates, draft.Time, now)
	if err != nil {
		return nil, fmt.Errorf("イベント %q を登録できません: %w", name, err)
	}

	created := make([]domain.Event, 0, len(dates))
	for i, date := range dates {
		created = append(created, uc.repo.Add(name, date, instants[i].Format(validator.TimeLayout), recurrence))
	}

	uc.logger.Info("event created", "name", name, "dates", len(created), "recurrence", recurrence)
	return created, nil
}
