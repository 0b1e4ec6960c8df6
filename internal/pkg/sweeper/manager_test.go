package sweeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carlimendez/aulareserva/internal/pkg/newsfeed"
	"github.com/carlimendez/aulareserva/internal/pkg/schedule"
)

func newTestManager() *Manager {
	// The tickers fire far later than any test runs, so the workers never
	// touch the underlying services here.
	return NewManager(schedule.NewAllocator(nil, nil), newsfeed.NewService(nil))
}

func TestManagerStartStop(t *testing.T) {
	m := newTestManager()
	assert.False(t, m.IsRunning())

	m.Start()
	assert.True(t, m.IsRunning())

	m.Stop()
	assert.False(t, m.IsRunning())
}

func TestManagerStartIsIdempotent(t *testing.T) {
	m := newTestManager()
	m.Start()
	m.Start()
	assert.True(t, m.IsRunning())
	m.Stop()
}

func TestManagerStopWithoutStart(t *testing.T) {
	m := newTestManager()
	assert.NotPanics(t, m.Stop)
}

func TestManagerRestart(t *testing.T) {
	m := newTestManager()
	m.Start()
	m.Stop()
	m.Start()
	assert.True(t, m.IsRunning())
	m.Stop()
}

func TestIntervalFromEnv(t *testing.T) {
	def := 10 * time.Minute

	assert.Equal(t, def, intervalFromEnv("SWEEP_TEST_INTERVAL", def))

	t.Setenv("SWEEP_TEST_INTERVAL", "3")
	assert.Equal(t, 3*time.Minute, intervalFromEnv("SWEEP_TEST_INTERVAL", def))

	t.Setenv("SWEEP_TEST_INTERVAL", "0")
	assert.Equal(t, def, intervalFromEnv("SWEEP_TEST_INTERVAL", def))

	t.Setenv("SWEEP_TEST_INTERVAL", "soon")
	assert.Equal(t, def, intervalFromEnv("SWEEP_TEST_INTERVAL", def))
}
