package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-negishi/academic-calendar-reminder/internal/domain"
)

func TestEventStore_AddAndList(t *testing.T) {
	s := NewEventStore()

	first := s.Add("期末試験", "2099-01-10", "09:00", "None")
	second := s.Add("期末試験", "2099-01-11", "09:00", "None")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	events := s.List()
	require.Len(t, events, 2)
	assert.Equal(t, "2099-01-10", events[0].Date)
	assert.Equal(t, "2099-01-11", events[1].Date)
	assert.Equal(t, 2, s.Len())
}

func TestEventStore_ListReturnsCopy(t *testing.T) {
	s := NewEventStore()
	s.Add("ゼミ", "2099-01-10", "13:00", "Weekly")

	events := s.List()
	events[0].Name = "書き換え"

	assert.Equal(t, "ゼミ", s.List()[0].Name)
}

func TestEventStore_Get(t *testing.T) {
	s := NewEventStore()

	_, err := s.Get(1)
	assert.ErrorIs(t, err, domain.ErrNoEvents)

	s.Add("ゼミ", "2099-01-10", "13:00", "Weekly")
	s.Add("講義", "2099-01-11", "10:40", "None")

	evt, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "講義", evt.Name)

	_, err = s.Get(0)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	_, err = s.Get(3)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventStore_ConcurrentAdd(t *testing.T) {
	s := NewEventStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(fmt.Sprintf("event-%d", i), "2099-01-01", "10:00", "None")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
