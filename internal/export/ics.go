// Package export 登録済みイベントを iCalendar 形式で書き出す
package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/validator"
)

const productID = "-//k-negishi//academic-calendar-reminder//EN"

// recurrenceFrequencies 繰り返しラベルと RRULE の頻度の対応
var recurrenceFrequencies = map[domain.Recurrence]rrule.Frequency{
	domain.RecurrenceWeekly:  rrule.WEEKLY,
	domain.RecurrenceMonthly: rrule.MONTHLY,
}

// WriteICS イベントを VEVENT として書き出す
//
// 繰り返しラベルは RRULE として添えるだけで、個々の日程には展開しない。
func WriteICS(w io.Writer, events []domain.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		start, err := validator.EventInstant(e)
		if err != nil {
			return fmt.Errorf("イベント %q の日時を解析できません: %w", e.Name, err)
		}

		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetCreatedTime(now)
		ev.SetStartAt(start)
		ev.SetSummary(e.Name)
		for _, rule := range RecurrenceRules(e.Recurrence) {
			ev.AddProperty(ical.ComponentPropertyRrule, rule)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("iCalendarの書き出しに失敗しました: %w", err)
	}
	return nil
}

// RecurrenceRules 繰り返しラベルを RRULE の値に変換（None は対象外）
func RecurrenceRules(recurrence string) []string {
	var rules []string
	for _, label := range domain.Labels(recurrence) {
		freq, ok := recurrenceFrequencies[label]
		if !ok {
			continue
		}
		opt := rrule.ROption{Freq: freq}
		rules = append(rules, opt.RRuleString())
	}
	return rules
}
