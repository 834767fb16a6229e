package usecase

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

// MockEventRepository は EventRepository のテスト用モック
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Add(name, date, clock, recurrence string) domain.Event {
	args := m.Called(name, date, clock, recurrence)
	return args.Get(0).(domain.Event)
}

func (m *MockEventRepository) Get(index int) (domain.Event, error) {
	args := m.Called(index)
	return args.Get(0).(domain.Event), args.Error(1)
}

// MockReminderScheduler は ReminderScheduler のテスト用モック
type MockReminderScheduler struct {
	mock.Mock
}

func (m *MockReminderScheduler) Schedule(event domain.Event, leadMinutes int, now time.Time) (*domain.Reminder, error) {
	args := m.Called(event, leadMinutes, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}
