// Package logger 構造化ログ出力のラッパー
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger slog をラップしたロガー
type Logger struct {
	internal *slog.Logger
	level    *slog.LevelVar
}

// New 指定レベルで標準エラー出力に書き込むロガーを作成
func New(level string) *Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter 出力先を指定してロガーを作成
func NewWithWriter(w io.Writer, level string) *Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(parseLevel(level))

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{
		internal: slog.New(handler),
		level:    lvl,
	}
}

// Discard 何も出力しないロガー（テスト用）
func Discard() *Logger {
	return NewWithWriter(io.Discard, "error")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// With 属性を付与した子ロガーを作成
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		level:    l.level,
	}
}

// SetLevel 実行中にログレベルを変更
func (l *Logger) SetLevel(level string) {
	l.level.Set(parseLevel(level))
}
