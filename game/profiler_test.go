package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTPSMonitor(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTPSMonitor(start)

	tests := []struct {
		name  string
		after time.Duration
		tps   float64
		want  bool
	}{
		{"slow during startup", time.Second, 10, false},
		{"healthy", 5 * time.Second, 50, false},
		{"first drop", 5 * time.Second, 30, true},
		{"drop on cooldown", 8 * time.Second, 30, false},
		{"drop after cooldown", 15 * time.Second, 30, true},
		{"exactly at threshold", 30 * time.Second, 45, false},
	}
	for _, tt := range tests {
		if got := m.Check(start.Add(tt.after), tt.tps); got != tt.want {
			t.Errorf("%s: Check = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestProfiler_WritesProfile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	now := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	p, err := StartProfiler(dir, now)
	if err != nil {
		t.Fatalf("StartProfiler: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Errorf("second Stop should be a no-op, got %v", err)
	}

	want := filepath.Join(dir, "session-20240304-050607.cpu.prof")
	if p.Path() != want {
		t.Errorf("expected path %s, got %s", want, p.Path())
	}
	info, err := os.Stat(want)
	if err != nil {
		t.Fatalf("stat profile: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("expected a non-empty profile")
	}
}
