package sweeper

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/carlimendez/aulareserva/internal/pkg/env"
	"github.com/carlimendez/aulareserva/internal/pkg/metrics/counter"
	"github.com/carlimendez/aulareserva/internal/pkg/newsfeed"
	"github.com/carlimendez/aulareserva/internal/pkg/schedule"
)

const (
	// DefaultNewsSweepInterval is how often expired news items are purged.
	DefaultNewsSweepInterval = 1 * time.Hour
	// DefaultAutoEndInterval is how often overdue reservations are ended.
	// The former client-side poll ran every 60 seconds; the server sweep
	// keeps that cadence.
	DefaultAutoEndInterval = 1 * time.Minute
	// DefaultCounterFlushInterval is how often pending view counters are
	// flushed from Redis to the database.
	DefaultCounterFlushInterval = 5 * time.Minute
)

// Manager runs the recurring maintenance sweeps: purging expired news and
// auto-ending reservations whose exit time plus grace period has passed.
type Manager struct {
	allocator *schedule.Allocator
	news      *newsfeed.Service

	newsTicker    *time.Ticker
	autoEndTicker *time.Ticker
	counterTicker *time.Ticker
	stopCh        chan struct{}
	wg            sync.WaitGroup
	mu            sync.Mutex
	running       bool
}

// NewManager creates a sweeper over the given services.
func NewManager(allocator *schedule.Allocator, news *newsfeed.Service) *Manager {
	return &Manager{
		allocator: allocator,
		news:      news,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the sweep goroutines. Calling Start on a running manager is
// a no-op.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// Recreate stop channel for each start cycle so the manager can be restarted safely.
	m.stopCh = make(chan struct{})
	m.running = true
	log.Info("[Sweeper] Starting background sweeps")

	m.newsTicker = time.NewTicker(intervalFromEnv("NEWS_SWEEP_INTERVAL_MINUTES", DefaultNewsSweepInterval))
	m.wg.Add(1)
	go m.newsWorker()

	m.autoEndTicker = time.NewTicker(intervalFromEnv("AUTO_END_INTERVAL_MINUTES", DefaultAutoEndInterval))
	m.wg.Add(1)
	go m.autoEndWorker()

	m.counterTicker = time.NewTicker(intervalFromEnv("COUNTER_FLUSH_INTERVAL_MINUTES", DefaultCounterFlushInterval))
	m.wg.Add(1)
	go m.counterWorker()

	log.Info("[Sweeper] Started successfully")
}

// Stop stops the sweep goroutines and waits for them to drain.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[Sweeper] Stopping background sweeps...")

	if m.newsTicker != nil {
		m.newsTicker.Stop()
	}
	if m.autoEndTicker != nil {
		m.autoEndTicker.Stop()
	}
	if m.counterTicker != nil {
		m.counterTicker.Stop()
	}

	close(m.stopCh)
	m.running = false
	m.wg.Wait()
	log.Info("[Sweeper] Stopped")
}

// IsRunning reports whether the sweeps are active.
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Manager) newsWorker() {
	defer m.wg.Done()

	for {
		select {
		case <-m.newsTicker.C:
			deleted, err := m.news.SweepExpired(time.Now())
			if err != nil {
				log.Errorf("[Sweeper] news sweep failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Infof("[Sweeper] purged %d expired news items", deleted)
			}
		case <-m.stopCh:
			return
		}
	}
}

func (m *Manager) autoEndWorker() {
	defer m.wg.Done()

	for {
		select {
		case <-m.autoEndTicker.C:
			ended, err := m.allocator.AutoEndOverdue(time.Now())
			if err != nil {
				log.Errorf("[Sweeper] auto-end sweep failed: %v", err)
				continue
			}
			if ended > 0 {
				log.Infof("[Sweeper] auto-ended %d overdue reservations", ended)
			}
		case <-m.stopCh:
			return
		}
	}
}

func (m *Manager) counterWorker() {
	defer m.wg.Done()

	for {
		select {
		case <-m.counterTicker.C:
			if err := counter.FlushAll(); err != nil {
				log.Errorf("[Sweeper] counter flush failed: %v", err)
			}
		case <-m.stopCh:
			return
		}
	}
}

func intervalFromEnv(key string, def time.Duration) time.Duration {
	raw := env.GetEnv(key, "")
	if raw == "" {
		return def
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return def
	}
	return time.Duration(minutes) * time.Minute
}
