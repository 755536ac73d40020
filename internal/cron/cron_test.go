package cron_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/catalyst/internal/cron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCleaner struct {
	mu   sync.Mutex
	days []int
}

func (f *fakeCleaner) CleanupOldLogs(ctx context.Context, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days = append(f.days, days)
	return nil
}

func (f *fakeCleaner) calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.days...)
}

func TestStartCleanupTask(t *testing.T) {
	t.Run("Runs once at start", func(t *testing.T) {
		cleaner := &fakeCleaner{}
		c, err := cron.StartCleanupTask("@daily", 30, cleaner)
		require.NoError(t, err)
		defer c.Stop()

		assert.Eventually(t, func() bool { return len(cleaner.calls()) == 1 }, time.Second, 10*time.Millisecond)
		assert.Equal(t, []int{30}, cleaner.calls())
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("Invalid schedule", func(t *testing.T) {
		cleaner := &fakeCleaner{}
		_, err := cron.StartCleanupTask("every tuesday", 30, cleaner)
		assert.Error(t, err)
		assert.Empty(t, cleaner.calls())
	})
}
