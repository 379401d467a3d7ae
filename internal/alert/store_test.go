package alert

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestStoreSetAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	s := NewStore()
	first := s.Set("saved", "success", time.Second)
	second := s.Set("failed", "danger", time.Second)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, []Alert{first, second}, s.Alerts())
}

func TestStoreRemove(t *testing.T) {
	t.Parallel()

	s := NewStore()
	a := s.Set("saved", "success", 0)
	s.Remove("missing")
	require.Equal(t, 1, s.Len())

	s.Remove(a.ID)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Alerts())
}

func TestStorePrune(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStore(WithClock(clock.Now))

	short := s.Set("short", "info", time.Second)
	long := s.Set("long", "info", 0)

	assert.Equal(t, 0, s.Prune())

	clock.Advance(time.Second)
	assert.Equal(t, 1, s.Prune())
	assert.Equal(t, []Alert{long}, s.Alerts())
	assert.NotEqual(t, short.ID, s.Alerts()[0].ID)

	clock.Advance(DefaultTimeout)
	assert.Equal(t, 1, s.Prune())
	assert.Equal(t, 0, s.Len())
}

func TestStoreAlertsIsSnapshot(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Set("saved", "success", 0)

	snapshot := s.Alerts()
	snapshot[0].Msg = "changed"

	assert.Equal(t, "saved", s.Alerts()[0].Msg)
}

func TestStoreLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	s := NewStore(WithLogger(log))
	a := s.Set("saved", "success", 0)
	s.Remove(a.ID)

	assert.Contains(t, buf.String(), "alert set")
	assert.Contains(t, buf.String(), "alert removed")
}

func TestStoreConcurrentUse(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := s.Set("msg", "info", time.Minute)
			_ = s.Alerts()
			if a.ID == "1" {
				s.Remove(a.ID)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 19, s.Len())
}
