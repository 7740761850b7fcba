package utils

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(3, LinearBackoff(time.Millisecond), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, NewLogger(false))

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ReturnsLastErrorWhenExhausted(t *testing.T) {
	sentinel := errors.New("still down")
	calls := 0
	err := Retry(2, LinearBackoff(time.Millisecond), func() error {
		calls++
		return sentinel
	}, NewLogger(false))

	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, sentinel)
}

func TestRetry_AtLeastOneAttempt(t *testing.T) {
	calls := 0
	err := Retry(0, LinearBackoff(time.Millisecond), func() error {
		calls++
		return nil
	}, NewLogger(false))

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLinearBackoff_Grows(t *testing.T) {
	backoff := LinearBackoff(time.Second)
	assert.Equal(t, time.Second, backoff(1))
	assert.Equal(t, 3*time.Second, backoff(3))
}

func TestURLTracker_Deduplicates(t *testing.T) {
	tracker := NewURLTracker()

	assert.True(t, tracker.Add("https://www.airbnb.com/rooms/1"))
	assert.False(t, tracker.Add("https://www.airbnb.com/rooms/1"))
	assert.True(t, tracker.Add("https://www.airbnb.com/rooms/2"))
	assert.Equal(t, 2, tracker.Count())
}

func TestURLTracker_ConcurrentAdds(t *testing.T) {
	tracker := NewURLTracker()
	var wg sync.WaitGroup
	fresh := make(chan bool, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fresh <- tracker.Add("https://www.airbnb.com/rooms/1")
		}()
	}
	wg.Wait()
	close(fresh)

	wins := 0
	for ok := range fresh {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, tracker.Count())
}
