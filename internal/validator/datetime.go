package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

const (
	// DateLayout イベント日付の書式
	DateLayout = "2006-01-02"
	// TimeLayout イベント時刻の書式（24時間表記）
	TimeLayout = "15:04"

	dateTimeLayout = DateLayout + " " + TimeLayout
)

// ParseDate 日付文字列を検証して解析
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: 日付 %q は YYYY-MM-DD 形式で入力してください", domain.ErrInvalidFormat, date)
	}
	return t, nil
}

// ParseDateTime 日付と時刻を結合してローカル時刻として解析
func ParseDateTime(date, clock string) (time.Time, error) {
	value := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	t, err := time.ParseInLocation(dateTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q は YYYY-MM-DD HH:MM 形式で入力してください", domain.ErrInvalidFormat, value)
	}
	return t, nil
}

// Validate 日時を解析し、now より厳密に未来であることを確認
//
// now と同時刻も拒否する。
func Validate(date, clock string, now time.Time) (time.Time, error) {
	t, err := ParseDateTime(date, clock)
	if err != nil {
		return time.Time{}, err
	}
	if !t.After(now) {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrPastOrPresent, t.Format(dateTimeLayout))
	}
	return t, nil
}

// ValidateAll 選択された全日付を共通の時刻で検証
//
// 1件でも失敗すればそのエラーを返し、成功時は日付順ではなく入力順の日時を返す。
func ValidateAll(dates []string, clock string, now time.Time) ([]time.Time, error) {
	out := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		t, err := Validate(date, clock, now)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// EventInstant 保存済みイベントの開始日時を取得
func EventInstant(event domain.Event) (time.Time, error) {
	return ParseDateTime(event.Date, event.Time)
}
