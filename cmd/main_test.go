package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-negishi/academic-calendar-reminder/internal/config"
	"github.com/k-negishi/academic-calendar-reminder/internal/gateway"
	"github.com/k-negishi/academic-calendar-reminder/internal/logger"
)

// newTestApp テスト用の app を構築するヘルパー
func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(&out, logger.Discard(), gateway.NewMultiNotifier(), time.Second)
	a.clock = func() time.Time {
		return time.Date(2024, 5, 10, 12, 30, 0, 0, time.Local)
	}
	return a, &out
}

func runCommands(a *app, commands ...string) {
	for _, c := range commands {
		a.handle(context.Background(), c)
	}
}

func TestHandle_AddAndList(t *testing.T) {
	a, out := newTestApp(t)

	runCommands(a,
		"date 2099-01-10",
		"date 2099-01-17",
		"add 09:00 Weekly 期末 試験",
	)

	assert.Contains(t, out.String(), "Event '期末 試験' added successfully for 2 dates!")
	assert.Equal(t, 2, a.events.Len())
	assert.Equal(t, 0, a.selection.Len())

	out.Reset()
	runCommands(a, "list")
	assert.Contains(t, out.String(), "1. Event: 期末 試験 | Date: 2099-01-10 | Time: 09:00 | Recurrence: Weekly")
	assert.Contains(t, out.String(), "2. Event: 期末 試験 | Date: 2099-01-17")
}

func TestHandle_DuplicateDate(t *testing.T) {
	a, out := newTestApp(t)

	runCommands(a, "date 2099-01-10", "date 2099-01-10")

	assert.Contains(t, out.String(), "Date Already Selected")
	assert.Equal(t, 1, a.selection.Len())
}

func TestHandle_AddWithoutDates(t *testing.T) {
	a, out := newTestApp(t)

	runCommands(a, "add 09:00 - 講義")

	assert.Contains(t, out.String(), "Please select at least one date")
	assert.Equal(t, 0, a.events.Len())
}

func TestHandle_AddPastDateKeepsSelection(t *testing.T) {
	a, out := newTestApp(t)

	runCommands(a, "date 2099-01-10", "date 2000-01-01", "add 09:00 - 講義")

	assert.Contains(t, out.String(), "must be in the future")
	assert.Equal(t, 0, a.events.Len())
	assert.Equal(t, 2, a.selection.Len())
}

func TestHandle_Remind(t *testing.T) {
	a, out := newTestApp(t)

	runCommands(a, "remind 1 10")
	assert.Contains(t, out.String(), "No events to set reminders for.")

	runCommands(a, "date 2099-01-10", "add 09:00 - 講義")
	out.Reset()

	runCommands(a, "remind 1 -5", "remind 2 5", "remind 1 abc")
	assert.Contains(t, out.String(), "Reminder time must be a non-negative number")
	assert.Contains(t, out.String(), "Please select an event")
	assert.Equal(t, 0, a.scheduler.Pending())

	out.Reset()
	runCommands(a, "remind 1 10", "reminders")
	assert.Contains(t, out.String(), "Reminder set for '講義' on 2099-01-10 at 2099-01-10 08:50.")
	assert.Contains(t, out.String(), "[Pending] 2099-01-10 08:50")
	assert.Equal(t, 1, a.scheduler.Pending())
}

func TestHandle_ImportAndExport(t *testing.T) {
	a, out := newTestApp(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "events.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
events:
  - name: ゼミ
    dates: ["2099-02-01", "2099-02-08"]
    time: "13:00"
    recurrence: [Weekly]
  - name: 過去
    dates: ["2000-01-01"]
    time: "10:00"
`), 0o600))

	runCommands(a, "import "+yamlPath)
	assert.Contains(t, out.String(), "Imported 2 event(s).")
	assert.Contains(t, out.String(), `skipped "過去"`)

	icsPath := filepath.Join(dir, "events.ics")
	runCommands(a, "export "+icsPath)
	assert.Contains(t, out.String(), "Exported 2 event(s)")

	data, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "BEGIN:VEVENT"))
	assert.Contains(t, string(data), "RRULE:FREQ=WEEKLY")
}

func TestHandle_GoogleCalendarNotConfigured(t *testing.T) {
	a, out := newTestApp(t)

	runCommands(a, "gcal 2099-01-10")

	assert.Contains(t, out.String(), "Google Calendar is not configured")
}

func TestHandle_QuitAndUnknown(t *testing.T) {
	a, out := newTestApp(t)

	assert.True(t, a.handle(context.Background(), "frobnicate"))
	assert.Contains(t, out.String(), "Unknown command")
	assert.True(t, a.handle(context.Background(), ""))
	assert.False(t, a.handle(context.Background(), "quit"))
}

func TestRun_StopsAtEOF(t *testing.T) {
	a, out := newTestApp(t)

	a.run(context.Background(), strings.NewReader("date 2099-01-10\ndates\n"))

	assert.Contains(t, out.String(), "Selected Dates: 2099-01-10")
}

func TestBuildSink(t *testing.T) {
	cfg := &config.Config{BeepEnabled: true}
	assert.Equal(t, 1, buildSink(cfg, &bytes.Buffer{}).Len())

	cfg = &config.Config{BeepEnabled: true, LineChannelAccessToken: "token", LineUserID: "user"}
	assert.Equal(t, 2, buildSink(cfg, &bytes.Buffer{}).Len())

	cfg = &config.Config{}
	assert.Equal(t, 0, buildSink(cfg, &bytes.Buffer{}).Len())
}
