package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

// Profiler records a CPU profile covering the whole session.
type Profiler struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// StartProfiler creates dir if needed and starts writing a timestamped CPU
// profile into it.
func StartProfiler(dir string, now time.Time) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("session-%s.cpu.prof", now.Format("20060102-150405")))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}

	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}
	return &Profiler{file: file, path: path}, nil
}

// Path returns the profile file being written.
func (p *Profiler) Path() string {
	return p.path
}

// Stop flushes the profile. Calling it more than once is harmless.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.file == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := p.file.Close()
	p.file = nil
	return err
}

// TPSMonitor reports sustained drops of the update rate, ignoring the first
// seconds after launch and rate-limiting its reports.
type TPSMonitor struct {
	Threshold float64
	Grace     time.Duration
	Cooldown  time.Duration

	started    time.Time
	lastReport time.Time
}

// NewTPSMonitor creates a monitor that starts counting from now.
func NewTPSMonitor(now time.Time) *TPSMonitor {
	return &TPSMonitor{
		Threshold: 45,
		Grace:     3 * time.Second,
		Cooldown:  10 * time.Second,
		started:   now,
	}
}

// Check returns true when tps is below the threshold and a report is due.
func (m *TPSMonitor) Check(now time.Time, tps float64) bool {
	if tps >= m.Threshold || now.Sub(m.started) < m.Grace {
		return false
	}
	if !m.lastReport.IsZero() && now.Sub(m.lastReport) < m.Cooldown {
		return false
	}
	m.lastReport = now
	return true
}
