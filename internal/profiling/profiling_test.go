package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackDisabledIsNoop(t *testing.T) {
	SetEnabled(false)
	ResetFrame()

	stop := Track("idle")
	time.Sleep(time.Millisecond)
	stop()

	if snap := Snapshot(); len(snap) != 0 {
		t.Errorf("Expected no totals while disabled, got %v", snap)
	}
}

func TestTrackAccumulates(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)
	ResetFrame()

	stop := Track("work")
	time.Sleep(5 * time.Millisecond)
	stop()

	stop = Track("work")
	time.Sleep(5 * time.Millisecond)
	stop()

	snap := Snapshot()
	if got := snap["work"]; got < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms accumulated, got %v", got)
	}

	ResetFrame()
	if snap := Snapshot(); len(snap) != 0 {
		t.Errorf("Expected ResetFrame to clear totals, got %v", snap)
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)
	ResetFrame()

	stop := Track("slow")
	time.Sleep(30 * time.Millisecond)
	stop()

	stop = Track("fast")
	time.Sleep(2 * time.Millisecond)
	stop()

	out := TopN(2)
	if !strings.HasPrefix(out, "slow:") {
		t.Errorf("Expected slow first, got %q", out)
	}
	if !strings.Contains(out, "fast:") {
		t.Errorf("Expected fast listed, got %q", out)
	}
	if !strings.Contains(out, "ms") {
		t.Errorf("Expected millisecond units, got %q", out)
	}

	// n larger than the entry count lists everything once
	if got := TopN(10); strings.Count(got, ":") != 2 {
		t.Errorf("Expected two entries, got %q", got)
	}

	ResetFrame()
	if got := TopN(3); got != "" {
		t.Errorf("Expected empty summary after reset, got %q", got)
	}
}
