package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/logger"
)

// ImportFailure 登録できなかった取り込み候補
type ImportFailure struct {
	Draft domain.EventDraft
	Err   error
}

// ImportResult 取り込み結果
type ImportResult struct {
	Created  []domain.Event
	Failures []ImportFailure
}

// ImportEventsUseCase 外部の取り込み元からイベントを登録するユースケース
type ImportEventsUseCase struct {
	creator *CreateEventUseCase
	logger  *logger.Logger
}

// NewImportEventsUseCase ユースケースを生成
func NewImportEventsUseCase(creator *CreateEventUseCase, log *logger.Logger) *ImportEventsUseCase {
	return &ImportEventsUseCase{
		creator: creator,
		logger:  log,
	}
}

// Execute 取り込み候補を1件ずつ通常の登録と同じ検証で登録する
//
// 候補単位で全か無か。失敗した候補は結果に記録し、残りの候補は続けて登録する。
func (uc *ImportEventsUseCase) Execute(ctx context.Context, source EventSource, now time.Time) (ImportResult, error) {
	drafts, err := source.FetchDrafts(ctx)
	if err != nil {
		uc.logger.Error("import source failed", "error", err)
		return ImportResult{}, fmt.Errorf("取り込み元の読み込みに失敗しました: %w", err)
	}

	var result ImportResult
	for _, draft := range drafts {
		created, err := uc.creator.Execute(draft, now)
		if err != nil {
			uc.logger.Warn("import skipped", "name", draft.Name, "error", err)
			result.Failures = append(result.Failures, ImportFailure{Draft: draft, Err: err})
			continue
		}
		result.Created = append(result.Created, created...)
	}

	uc.logger.Info("import finished", "created", len(result.Created), "failed", len(result.Failures))
	return result, nil
}
