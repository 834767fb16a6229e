// Package presenter 一覧表示と結果メッセージの整形
package presenter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

// FormatEventList イベント一覧を1始まりの番号付きで整形
//
// 全角文字を含むイベント名でも列が揃うよう表示幅で埋める。
func FormatEventList(events []domain.Event) string {
	if len(events) == 0 {
		return "No events found.\n"
	}

	nameWidth := 0
	for _, e := range events {
		if w := runewidth.StringWidth(e.Name); w > nameWidth {
			nameWidth = w
		}
	}
	indexWidth := len(fmt.Sprint(len(events)))

	var b strings.Builder
	for i, e := range events {
		fmt.Fprintf(&b, "%*d. Event: %s | Date: %s | Time: %s | Recurrence: %s\n",
			indexWidth, i+1,
			runewidth.FillRight(e.Name, nameWidth),
			e.Date, e.Time, e.Recurrence,
		)
	}
	return b.String()
}

// FormatReminders 予約済みリマインダーを整形
func FormatReminders(reminders []*domain.Reminder) string {
	if len(reminders) == 0 {
		return "No reminders scheduled.\n"
	}

	var b strings.Builder
	for _, r := range reminders {
		fmt.Fprintf(&b, "[%s] %s  %s (%s %s, %d min before)\n",
			runewidth.FillRight(r.State().String(), 7),
			r.FireAt.Format("2006-01-02 15:04"),
			r.Event.Name, r.Event.Date, r.Event.Time, r.LeadMinutes,
		)
	}
	return b.String()
}

// EventAddedMessage イベント登録成功時のメッセージ
func EventAddedMessage(events []domain.Event) string {
	if len(events) == 0 {
		return ""
	}
	if len(events) == 1 {
		return fmt.Sprintf("Event '%s' added successfully!", events[0].Name)
	}
	return fmt.Sprintf("Event '%s' added successfully for %d dates!", events[0].Name, len(events))
}

// ReminderSetMessage リマインダー設定成功時のメッセージ
func ReminderSetMessage(r *domain.Reminder) string {
	return fmt.Sprintf("Reminder set for '%s' on %s at %s.",
		r.Event.Name, r.Event.Date, r.FireAt.Format("2006-01-02 15:04"))
}

// ErrorMessage エラーを利用者向けのメッセージに変換
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyName):
		return "Invalid Input: Please enter an event name."
	case errors.Is(err, domain.ErrNoDatesSelected):
		return "Invalid Input: Please select at least one date for the event."
	case errors.Is(err, domain.ErrDuplicateDate):
		return "Date Already Selected: This date has already been selected."
	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid Input: Invalid date or time format. Please use YYYY-MM-DD and HH:MM in 24-hour format."
	case errors.Is(err, domain.ErrPastOrPresent):
		return "Invalid Input: Event date and time must be in the future. Please try again."
	case errors.Is(err, domain.ErrInvalidRecurrence):
		return "Invalid Input: Recurrence must be one of None, Weekly, Monthly."
	case errors.Is(err, domain.ErrNoEvents):
		return "No Events: No events to set reminders for."
	case errors.Is(err, domain.ErrEventNotFound):
		return "Selection Error: Please select an event to set a reminder for."
	case errors.Is(err, domain.ErrInvalidLeadTime):
		return "Invalid Input: Reminder time must be a non-negative number of minutes."
	case errors.Is(err, domain.ErrReminderInPast):
		return "Invalid Time: Reminder time is in the past. Skipping."
	default:
		return "Error: " + err.Error()
	}
}
