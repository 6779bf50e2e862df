package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/ports"
	"go.uber.org/zap"
)

// CheckFunc checks one dependency
type CheckFunc func(ctx context.Context) error

// Check is a named dependency check
type Check struct {
	Name string
	Run  CheckFunc
}

// PingCheck adapts a Pinger into a named check
func PingCheck(name string, p ports.Pinger) Check {
	return Check{Name: name, Run: p.Ping}
}

// Reporter receives the overall health after every round of checks
type Reporter interface {
	SetHealthy(healthy bool)
}

// Status represents the result of one round of checks
type Status struct {
	Healthy   bool
	Checks    map[string]string
	Timestamp time.Time
}

// CheckOK is the value reported for a passing check
const CheckOK = "ok"

// Monitor periodically checks dependencies
type Monitor struct {
	checks    []Check
	interval  time.Duration
	timeout   time.Duration
	metrics   ports.MetricsCollector
	reporters []Reporter
	logger    *zap.Logger

	mu      sync.RWMutex
	running bool
	status  *Status
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// Config holds monitor configuration
type Config struct {
	Checks    []Check
	Interval  time.Duration
	Timeout   time.Duration
	Metrics   ports.MetricsCollector
	Reporters []Reporter
	Logger    *zap.Logger
}

// NewMonitor creates a new health monitor
func NewMonitor(cfg *Config) *Monitor {
	return &Monitor{
		checks:    cfg.Checks,
		interval:  cfg.Interval,
		timeout:   cfg.Timeout,
		metrics:   cfg.Metrics,
		reporters: cfg.Reporters,
		logger:    cfg.Logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs a first round of checks synchronously, then keeps checking
// in the background
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.mu.Unlock()

	m.CheckNow(ctx)
	go m.run()
}

// Stop stops the background checks and waits for the loop to exit
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	close(m.stopCh)
	<-m.doneCh
}

func (m *Monitor) run() {
	defer close(m.doneCh)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.CheckNow(context.Background())
		}
	}
}

// CheckNow runs every check once and records the result
func (m *Monitor) CheckNow(ctx context.Context) *Status {
	status := &Status{
		Healthy:   true,
		Checks:    make(map[string]string, len(m.checks)),
		Timestamp: time.Now().UTC(),
	}

	for _, check := range m.checks {
		err := m.runCheck(ctx, check)
		up := err == nil
		if up {
			status.Checks[check.Name] = CheckOK
		} else {
			status.Checks[check.Name] = err.Error()
			status.Healthy = false
			m.logger.Warn("dependency check failed",
				zap.String("dependency", check.Name),
				zap.Error(err))
		}

		if m.metrics != nil {
			m.metrics.RecordDependencyStatus(check.Name, up)
		}
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()

	for _, r := range m.reporters {
		r.SetHealthy(status.Healthy)
	}

	m.logger.Debug("dependency health check",
		zap.Bool("healthy", status.Healthy),
		zap.Strings("dependencies", names(status.Checks)))

	return status
}

func (m *Monitor) runCheck(ctx context.Context, check Check) error {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	return check.Run(ctx)
}

// GetStatus returns the last recorded status, or nil before the first round
func (m *Monitor) GetStatus() *Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// IsHealthy returns true if the last round of checks passed
func (m *Monitor) IsHealthy() bool {
	status := m.GetStatus()
	return status != nil && status.Healthy
}

func names(checks map[string]string) []string {
	out := make([]string, 0, len(checks))
	for name := range checks {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
