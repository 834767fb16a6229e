package store

import (
	"fmt"
	"strings"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/validator"
)

// DateSelection イベント登録前に選択された日付（入力順・重複なし）
type DateSelection struct {
	dates []string
}

// Add 日付を選択に追加
//
// 形式不正や重複の場合はエラーを返し、選択内容は変更しない。
func (s *DateSelection) Add(date string) error {
	date = strings.TrimSpace(date)
	if _, err := validator.ParseDate(date); err != nil {
		return err
	}
	for _, d := range s.dates {
		if d == date {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateDate, date)
		}
	}
	s.dates = append(s.dates, date)
	return nil
}

// Dates 選択中の日付（コピー）
func (s *DateSelection) Dates() []string {
	return append([]string(nil), s.dates...)
}

func (s *DateSelection) Len() int {
	return len(s.dates)
}

// Clear イベント登録後に選択をリセット
func (s *DateSelection) Clear() {
	s.dates = nil
}

func (s *DateSelection) String() string {
	return strings.Join(s.dates, ", ")
}
