package domain

import (
	"fmt"
	"strings"
)

// Event カレンダーイベントのドメインエンティティ（作成後は不変）
type Event struct {
	ID         string
	Name       string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM (24時間表記)
	Recurrence string // 繰り返しラベル（表示用のみ、展開はしない）
}

// Recurrence 繰り返しラベル
type Recurrence string

const (
	RecurrenceNone    Recurrence = "None"
	RecurrenceWeekly  Recurrence = "Weekly"
	RecurrenceMonthly Recurrence = "Monthly"
)

// RecurrenceOptions 選択可能な繰り返しラベル（表示順）
var RecurrenceOptions = []Recurrence{RecurrenceNone, RecurrenceWeekly, RecurrenceMonthly}

// FormatRecurrence 選択された繰り返しラベルを保存用の文字列に変換
//
// 未選択の場合は "None"、複数選択時は選択肢の並び順で ", " 区切りに結合する。
func FormatRecurrence(selected []string) (string, error) {
	if len(selected) == 0 {
		return string(RecurrenceNone), nil
	}

	chosen := make(map[Recurrence]bool, len(selected))
	for _, s := range selected {
		label := Recurrence(strings.TrimSpace(s))
		if !label.Valid() {
			return "", fmt.Errorf("%w: %q", ErrInvalidRecurrence, s)
		}
		chosen[label] = true
	}

	labels := make([]string, 0, len(chosen))
	for _, opt := range RecurrenceOptions {
		if chosen[opt] {
			labels = append(labels, string(opt))
		}
	}
	return strings.Join(labels, ", "), nil
}

// Valid 既定の選択肢に含まれるかどうか
func (r Recurrence) Valid() bool {
	for _, opt := range RecurrenceOptions {
		if r == opt {
			return true
		}
	}
	return false
}

// Labels 保存済みの繰り返し文字列をラベルに分解
func Labels(recurrence string) []Recurrence {
	parts := strings.Split(recurrence, ",")
	out := make([]Recurrence, 0, len(parts))
	for _, p := range parts {
		label := Recurrence(strings.TrimSpace(p))
		if label.Valid() {
			out = append(out, label)
		}
	}
	return out
}
