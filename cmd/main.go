package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/k-negishi/academic-calendar-reminder/internal/config"
	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/export"
	"github.com/k-negishi/academic-calendar-reminder/internal/gateway"
	"github.com/k-negishi/academic-calendar-reminder/internal/importer"
	"github.com/k-negishi/academic-calendar-reminder/internal/logger"
	"github.com/k-negishi/academic-calendar-reminder/internal/presenter"
	"github.com/k-negishi/academic-calendar-reminder/internal/reminder"
	"github.com/k-negishi/academic-calendar-reminder/internal/store"
	"github.com/k-negishi/academic-calendar-reminder/internal/usecase"
	"github.com/k-negishi/academic-calendar-reminder/internal/validator"
)

const helpText = `Commands:
  date <YYYY-MM-DD>                  select a date for the next event
  dates                              show selected dates
  clear                              clear selected dates
  add <HH:MM> <recurrence|-> <name>  add the event for every selected date
                                     (recurrence: None,Weekly,Monthly comma separated)
  list                               show events
  remind <no> <minutes>              set a reminder <minutes> before event <no>
  reminders                          show scheduled reminders
  import <file.yaml>                 import events from a YAML file
  gcal <YYYY-MM-DD>                  import timed events of a day from Google Calendar
  export <file.ics>                  export events as iCalendar
  help                               show this help
  quit                               exit (pending reminders are dropped)
`

// app 対話シェルの状態
type app struct {
	out       io.Writer
	logger    *logger.Logger
	clock     func() time.Time
	events    *store.EventStore
	selection store.DateSelection
	scheduler *reminder.Scheduler
	creator   *usecase.CreateEventUseCase
	setter    *usecase.SetReminderUseCase
	importer  *usecase.ImportEventsUseCase
	calendar  *gateway.GoogleCalendarRepository
}

// newApp 依存関係を組み立てる
func newApp(out io.Writer, log *logger.Logger, sink reminder.NotificationSink, notifyTimeout time.Duration) *app {
	events := store.NewEventStore()
	scheduler := reminder.NewScheduler(sink, log, notifyTimeout)
	creator := usecase.NewCreateEventUseCase(events, log)

	return &app{
		out:       out,
		logger:    log,
		clock:     time.Now,
		events:    events,
		scheduler: scheduler,
		creator:   creator,
		setter:    usecase.NewSetReminderUseCase(events, scheduler),
		importer:  usecase.NewImportEventsUseCase(creator, log),
	}
}

// handle 1行分のコマンドを処理する。終了する場合は false を返す
func (a *app) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprint(a.out, helpText)
	case "date":
		a.selectDate(args)
	case "dates":
		fmt.Fprintf(a.out, "Selected Dates: %s\n", a.selection.String())
	case "clear":
		a.selection.Clear()
		fmt.Fprintln(a.out, "Selected dates cleared.")
	case "add":
		a.addEvent(args)
	case "list":
		fmt.Fprint(a.out, presenter.FormatEventList(a.events.List()))
	case "remind":
		a.setReminder(args)
	case "reminders":
		fmt.Fprint(a.out, presenter.FormatReminders(a.scheduler.Reminders()))
	case "import":
		a.importYAML(ctx, args)
	case "gcal":
		a.importGoogleCalendar(ctx, args)
	case "export":
		a.exportICS(args)
	default:
		fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for usage.\n", cmd)
	}
	return true
}

func (a *app) selectDate(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: date <YYYY-MM-DD>")
		return
	}
	if err := a.selection.Add(args[0]); err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(err))
		return
	}
	fmt.Fprintf(a.out, "Selected Dates: %s\n", a.selection.String())
}

func (a *app) addEvent(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: add <HH:MM> <recurrence|-> <name>")
		return
	}

	var recurrence []string
	if args[1] != "-" {
		recurrence = strings.Split(args[1], ",")
	}

	created, err := a.creator.Execute(domain.EventDraft{
		Name:       strings.Join(args[2:], " "),
		Dates:      a.selection.Dates(),
		Time:       args[0],
		Recurrence: recurrence,
	}, a.clock())
	if err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(err))
		return
	}

	a.selection.Clear()
	fmt.Fprintln(a.out, presenter.EventAddedMessage(created))
	fmt.Fprint(a.out, presenter.FormatEventList(a.events.List()))
}

func (a *app) setReminder(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: remind <no> <minutes>")
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(domain.ErrEventNotFound))
		return
	}

	r, err := a.setter.Execute(index, args[1], a.clock())
	if err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(err))
		return
	}
	fmt.Fprintln(a.out, presenter.ReminderSetMessage(r))
}

func (a *app) importYAML(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: import <file.yaml>")
		return
	}
	a.runImport(ctx, importer.NewYAMLSource(args[0]))
}

func (a *app) importGoogleCalendar(ctx context.Context, args []string) {
	if a.calendar == nil {
		fmt.Fprintln(a.out, "Google Calendar is not configured (set GOOGLE_CREDENTIALS).")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: gcal <YYYY-MM-DD>")
		return
	}
	day, err := validator.ParseDate(args[0])
	if err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(err))
		return
	}

	a.runImport(ctx, usecase.EventSourceFunc(func(ctx context.Context) ([]domain.EventDraft, error) {
		return a.calendar.GetDrafts(ctx, day)
	}))
}

func (a *app) runImport(ctx context.Context, source usecase.EventSource) {
	result, err := a.importer.Execute(ctx, source, a.clock())
	if err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(err))
		return
	}
	fmt.Fprintf(a.out, "Imported %d event(s).\n", len(result.Created))
	for _, f := range result.Failures {
		fmt.Fprintf(a.out, "  skipped %q: %s\n", f.Draft.Name, presenter.ErrorMessage(f.Err))
	}
}

func (a *app) exportICS(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: export <file.ics>")
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(err))
		return
	}
	defer f.Close()

	events := a.events.List()
	if err := export.WriteICS(f, events, a.clock()); err != nil {
		fmt.Fprintln(a.out, presenter.ErrorMessage(err))
		return
	}
	fmt.Fprintf(a.out, "Exported %d event(s) to %s.\n", len(events), args[0])
}

// run 標準入力からコマンドを読み続ける
func (a *app) run(ctx context.Context, in io.Reader) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	fmt.Fprint(a.out, "> ")
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok || !a.handle(ctx, line) {
				return
			}
			fmt.Fprint(a.out, "> ")
		}
	}
}

// buildSink 設定に応じて通知先を組み立てる
func buildSink(cfg *config.Config, out io.Writer) *gateway.MultiNotifier {
	var sinks []reminder.NotificationSink
	if cfg.BeepEnabled {
		sinks = append(sinks, gateway.NewBeepNotifier(out))
	}
	if cfg.LINEEnabled() {
		sinks = append(sinks, gateway.NewLINENotifier(cfg.LineChannelAccessToken, cfg.LineUserID))
	}
	return gateway.NewMultiNotifier(sinks...)
}

func main() {
	envFile := flag.String("env", "", "path to a .env file (default: ./.env if present)")
	importFile := flag.String("import", "", "YAML file with events to import at startup")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	// 設定を読み込み
	cfg, err := config.Load(ctx, envFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定読み込みエラー: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	sink := buildSink(cfg, os.Stdout)
	if sink.Len() == 0 {
		log.Warn("no notification sink enabled; reminders will only be logged")
	}

	a := newApp(os.Stdout, log, sink, cfg.NotifyTimeout)

	// Google Calendarクライアントを初期化（設定がある場合のみ）
	if cfg.GoogleCalendarEnabled() {
		creds, err := cfg.GetGoogleCredentialsJSON()
		if err == nil {
			a.calendar, err = gateway.NewGoogleCalendarRepository(ctx, creds, cfg.CalendarID)
		}
		if err != nil {
			log.Error("google calendar disabled", "error", err)
		}
	}

	if *importFile != "" {
		a.runImport(ctx, importer.NewYAMLSource(*importFile))
	}

	fmt.Fprintln(os.Stdout, "Academic Calendar Manager. Type 'help' for commands.")
	a.run(ctx, os.Stdin)

	log.Info("exiting", "pending_reminders", a.scheduler.Pending())
}
