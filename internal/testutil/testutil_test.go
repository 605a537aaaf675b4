package testutil

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	g := NewSequentialIDs("ds")
	assert.Equal(t, "ds-0001", g.Generate())
	assert.Equal(t, "ds-0002", g.Generate())

	g.Reset()
	assert.Equal(t, "ds-0001", g.Generate())

	assert.Equal(t, "test-0001", NewSequentialIDs("").Generate())
}

func TestSequentialIDsConcurrent(t *testing.T) {
	g := NewSequentialIDs("c")

	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				id := g.Generate()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 500)
}

func TestCaptureLogger(t *testing.T) {
	logger, buf := CaptureLogger(slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("shown", "seq", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown seq=3")

	buf.Reset()
	assert.Empty(t, buf.String())

	DiscardLogger().Info("nowhere")
}
