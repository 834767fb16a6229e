package domain

// EventDraft 登録前のイベント入力
//
// 1つの下書きから Dates の件数分だけ Event が作られる。時刻と繰り返しは全日付で共通。
type EventDraft struct {
	Name       string   `yaml:"name"`
	Dates      []string `yaml:"dates"`
	Time       string   `yaml:"time"`
	Recurrence []string `yaml:"recurrence"`
}
