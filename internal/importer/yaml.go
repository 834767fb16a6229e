// Package importer YAMLファイルからイベントの取り込み候補を読み込む
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

// File 取り込みファイルの構造
//
//	events:
//	  - name: 期末試験
//	    dates: ["2099-01-10", "2099-01-17"]
//	    time: "09:00"
//	    recurrence: [Weekly]
type File struct {
	Events []domain.EventDraft `yaml:"events"`
}

// Parse YAMLを取り込み候補に変換
func Parse(data []byte) ([]domain.EventDraft, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("YAMLの解析に失敗しました: %w", err)
	}
	return f.Events, nil
}

// YAMLSource YAMLファイルを取り込み元とする EventSource
type YAMLSource struct {
	path string
}

// NewYAMLSource ファイルパスを指定して取り込み元を作成
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// FetchDrafts ファイルを読み込んで取り込み候補を返す
func (s *YAMLSource) FetchDrafts(ctx context.Context) ([]domain.EventDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return nil, errors.New("取り込みファイルのパスが空です")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("取り込みファイル %s の読み込みに失敗しました: %w", s.path, err)
	}
	return Parse(data)
}
