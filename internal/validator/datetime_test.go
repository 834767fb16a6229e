package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

var now = time.Date(2024, 5, 10, 12, 30, 0, 0, time.Local)

func TestValidate_Success(t *testing.T) {
	result, err := Validate("2099-01-01", "10:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2099, 1, 1, 10, 0, 0, 0, time.Local), result)
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	result, err := Validate(" 2099-01-01 ", " 10:00 ", now)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Hour())
}

func TestValidate_InvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
	}{
		{"存在しない月", "2099-13-01", "10:00"},
		{"存在しない日", "2099-02-30", "10:00"},
		{"日付の区切りが不正", "2099/01/01", "10:00"},
		{"時刻が範囲外", "2099-01-01", "24:00"},
		{"分が範囲外", "2099-01-01", "10:60"},
		{"12時間表記", "2099-01-01", "10:00 PM"},
		{"時刻が空", "2099-01-01", ""},
		{"日付が空", "", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.date, tt.clock, now)
			assert.ErrorIs(t, err, domain.ErrInvalidFormat)
		})
	}
}

func TestValidate_PastOrPresent(t *testing.T) {
	_, err := Validate("2000-01-01", "10:00", now)
	assert.ErrorIs(t, err, domain.ErrPastOrPresent)
}

func TestValidate_SameMinuteIsRejected(t *testing.T) {
	_, err := Validate("2024-05-10", "12:30", now)
	assert.ErrorIs(t, err, domain.ErrPastOrPresent)
}

func TestValidate_NextMinuteIsAccepted(t *testing.T) {
	_, err := Validate("2024-05-10", "12:31", now)
	assert.NoError(t, err)
}

func TestValidateAll_ChecksEveryDate(t *testing.T) {
	_, err := ValidateAll([]string{"2099-01-01", "2000-01-01"}, "10:00", now)
	assert.ErrorIs(t, err, domain.ErrPastOrPresent)

	_, err = ValidateAll([]string{"2099-01-01", "2099-99-01"}, "10:00", now)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestValidateAll_Success(t *testing.T) {
	result, err := ValidateAll([]string{"2099-01-02", "2099-01-01"}, "08:15", now)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 2, result[0].Day())
	assert.Equal(t, 1, result[1].Day())
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2099-01-01")
	assert.NoError(t, err)

	_, err = ParseDate("01-01-2099")
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestEventInstant(t *testing.T) {
	result, err := EventInstant(domain.Event{Date: "2099-03-04", Time: "07:05"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2099, 3, 4, 7, 5, 0, 0, time.Local), result)
}
