package gateway

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
	"github.com/k-negishi/academic-calendar-reminder/internal/validator"
)

// EventsProvider Google Calendar APIからイベント一覧を取得するポート
type EventsProvider interface {
	ListEvents(calendarID, timeMin, timeMax string) ([]*calendar.Event, error)
}

// serviceEventsProvider calendar.Service を使った EventsProvider の実装
type serviceEventsProvider struct {
	service *calendar.Service
	ctx     context.Context
}

func (p *serviceEventsProvider) ListEvents(calendarID, timeMin, timeMax string) ([]*calendar.Event, error) {
	events, err := p.service.Events.List(calendarID).
		Context(p.ctx).
		TimeMin(timeMin).
		TimeMax(timeMax).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(50). // 1日の予定上限を50件に設定
		Do()
	if err != nil {
		return nil, err
	}
	return events.Items, nil
}

// GoogleCalendarRepository Google Calendarの予定を取り込み候補に変換するリポジトリ
type GoogleCalendarRepository struct {
	provider   EventsProvider
	calendarID string
	location   *time.Location
}

// NewGoogleCalendarRepository サービスアカウント認証でリポジトリを作成
func NewGoogleCalendarRepository(ctx context.Context, credentialsJSON []byte, calendarID string) (*GoogleCalendarRepository, error) {
	creds, err := google.CredentialsFromJSON(
		ctx,
		credentialsJSON,
		calendar.CalendarReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("google認証情報の読み込みに失敗しました: %v", err)
	}

	service, err := calendar.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("google Calendar APIサービスの作成に失敗しました: %v", err)
	}

	return NewGoogleCalendarRepositoryWithProvider(
		&serviceEventsProvider{service: service, ctx: ctx},
		calendarID,
		time.Local,
	), nil
}

// NewGoogleCalendarRepositoryWithProvider 任意の EventsProvider でリポジトリを作成
func NewGoogleCalendarRepositoryWithProvider(provider EventsProvider, calendarID string, location *time.Location) *GoogleCalendarRepository {
	return &GoogleCalendarRepository{
		provider:   provider,
		calendarID: calendarID,
		location:   location,
	}
}

// GetDrafts 指定された日の時刻指定ありの予定を取り込み候補として取得
//
// 終日の予定は時刻を持たないため対象外。
func (r *GoogleCalendarRepository) GetDrafts(_ context.Context, targetDate time.Time) ([]domain.EventDraft, error) {
	// 開始時刻: 指定日の00:00:00 - inclusive
	start := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, r.location)
	// 終了時刻: 翌日の00:00:00 - exclusive
	end := start.AddDate(0, 0, 1)

	events, err := r.provider.ListEvents(r.calendarID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("カレンダーイベントの取得に失敗しました: %v", err)
	}

	drafts := make([]domain.EventDraft, 0, len(events))
	for _, event := range events {
		draft, ok, err := r.convertToDraft(event)
		if err != nil {
			// 変換できないイベントは取り込み対象から外す
			continue
		}
		if ok {
			drafts = append(drafts, draft)
		}
	}
	return drafts, nil
}

// convertToDraft Google Calendar APIのイベントを取り込み候補に変換
func (r *GoogleCalendarRepository) convertToDraft(event *calendar.Event) (domain.EventDraft, bool, error) {
	if event.Start == nil {
		return domain.EventDraft{}, false, fmt.Errorf("開始時刻が設定されていません (ID: %s)", event.Id)
	}
	if event.Start.DateTime == "" {
		if event.Start.Date != "" {
			// 終日イベント
			return domain.EventDraft{}, false, nil
		}
		return domain.EventDraft{}, false, fmt.Errorf("開始時刻が設定されていません (ID: %s)", event.Id)
	}

	startTime, err := time.Parse(time.RFC3339, event.Start.DateTime)
	if err != nil {
		return domain.EventDraft{}, false, fmt.Errorf("開始時刻の解析に失敗しました: %v", err)
	}
	startTime = startTime.In(r.location)

	name := event.Summary
	// タイトルが空の場合は「（無題）」に設定
	if name == "" {
		name = "（無題）"
	}

	return domain.EventDraft{
		Name:  name,
		Dates: []string{startTime.Format(validator.DateLayout)},
		Time:  startTime.Format(validator.TimeLayout),
	}, true, nil
}
