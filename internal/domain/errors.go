package domain

import "errors"

// 入力検証・リマインダー設定で返すエラー
// 呼び出し側は errors.Is で判定し、表示用メッセージに変換する。
var (
	ErrInvalidFormat     = errors.New("日付または時刻の形式が不正です")
	ErrPastOrPresent     = errors.New("日時は未来である必要があります")
	ErrDuplicateDate     = errors.New("この日付は既に選択されています")
	ErrEmptyName         = errors.New("イベント名が入力されていません")
	ErrNoDatesSelected   = errors.New("日付が1つも選択されていません")
	ErrInvalidRecurrence = errors.New("繰り返しの指定が不正です")
	ErrInvalidLeadTime   = errors.New("リマインダーの分数が不正です")
	ErrReminderInPast    = errors.New("リマインダー時刻が過去です")
	ErrNoEvents          = errors.New("イベントが登録されていません")
	ErrEventNotFound     = errors.New("指定されたイベントが見つかりません")
)
