package emotion

import (
	"log/slog"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestModel(t *testing.T, cfg Config) (*Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	m, err := NewModel(cfg, clock.Now, slog.Default())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m, clock
}

func TestAxisByName(t *testing.T) {
	axis, err := AxisByName("Determination")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if axis != Determination {
		t.Fatalf("expected Determination, got %v", axis)
	}
	if _, err := AxisByName("Nostalgia"); err == nil {
		t.Fatal("expected error for unknown axis name")
	}
}

func TestUpdateClampsToBounds(t *testing.T) {
	m, _ := newTestModel(t, Config{})

	m.Update(Anger, 250)
	if got := m.Value(Anger); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
	m.Update(Anger, -999)
	if got := m.Value(Anger); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	m.SetValue(Anger, 300)
	if got := m.Value(Anger); got != 100 {
		t.Fatalf("expected set clamp to 100, got %d", got)
	}
}

func TestClampInvariantOverSequence(t *testing.T) {
	m, clock := newTestModel(t, Config{DecayPerMinute: 3})

	deltas := []int{40, -90, 120, 7, -3, 55, -200, 99}
	for i, d := range deltas {
		clock.Advance(time.Duration(i) * 20 * time.Second)
		m.Update(Depression, d)
		if v := m.Value(Depression); v < 0 || v > 100 {
			t.Fatalf("value %d escaped [0,100] after delta %d", v, d)
		}
		m.SetValue(Affection, d*3)
		if v := m.Value(Affection); v < 0 || v > 100 {
			t.Fatalf("set value %d escaped [0,100]", v)
		}
	}
}

func TestDecayScenario(t *testing.T) {
	// Axis at 0, decay 6/minute: +10, then +0 a minute later must land on 4.
	m, clock := newTestModel(t, Config{DecayPerMinute: 6})

	m.Update(Obsession, 10)
	if got := m.Value(Obsession); got != 10 {
		t.Fatalf("expected 10 before decay, got %d", got)
	}

	clock.Advance(60 * time.Second)
	m.Update(Obsession, 0)
	if got := m.Value(Obsession); got != 4 {
		t.Fatalf("expected 10-6=4 after one minute, got %d", got)
	}
}

func TestDecayMonotoneInElapsedTime(t *testing.T) {
	short, shortClock := newTestModel(t, Config{DecayPerMinute: 2})
	long, longClock := newTestModel(t, Config{DecayPerMinute: 2})

	short.Update(Determination, 50)
	long.Update(Determination, 50)

	shortClock.Advance(1 * time.Minute)
	longClock.Advance(5 * time.Minute)
	short.Update(Determination, 10)
	long.Update(Determination, 10)

	if long.Value(Determination) > short.Value(Determination) {
		t.Fatalf("longer elapsed time produced larger value: %d > %d",
			long.Value(Determination), short.Value(Determination))
	}
}

func TestBackwardClockNeverRaisesValue(t *testing.T) {
	m, clock := newTestModel(t, Config{DecayPerMinute: 6})

	m.Update(Anger, 30)
	clock.Advance(-10 * time.Minute)
	m.Update(Anger, 0)
	if got := m.Value(Anger); got != 30 {
		t.Fatalf("backward clock changed value: got %d, want 30", got)
	}
}

func TestUpdateInvalidAxisIsNoOp(t *testing.T) {
	m, _ := newTestModel(t, Config{})

	m.Update(Axis(99), 50)
	if len(m.History()) != 0 {
		t.Fatalf("invalid axis appended history: %#v", m.History())
	}
	if err := m.UpdateByName("NotAnAxis", 50); err == nil {
		t.Fatal("expected error for unknown display name")
	}
}

func TestMeetsThreshold(t *testing.T) {
	m, _ := newTestModel(t, Config{})

	m.SetValue(Obsession, 80)
	if !m.MeetsThreshold(Obsession, 80) {
		t.Fatal("value equal to threshold should meet it")
	}
	if m.MeetsThreshold(Obsession, 81) {
		t.Fatal("value below threshold should not meet it")
	}
	if m.MeetsThreshold(Anger, 1) {
		t.Fatal("zero axis met a positive threshold")
	}
	if !m.MeetsThreshold(Anger, 0) {
		t.Fatal("zero axis should meet a zero threshold")
	}
}

func TestSummaryDominantAndTieBreak(t *testing.T) {
	m, _ := newTestModel(t, Config{})

	s := m.Summarize()
	if s.Dominant != "none" {
		t.Fatalf("expected dominant none at zero, got %q", s.Dominant)
	}
	if s.Stability != 1.0 {
		t.Fatalf("expected stability 1.0 with no history, got %v", s.Stability)
	}

	// Tie between Anger and Determination: enumeration order wins.
	m.SetValue(Anger, 40)
	m.SetValue(Determination, 40)
	s = m.Summarize()
	if s.Dominant != "Anger" {
		t.Fatalf("expected tie to break to Anger, got %q", s.Dominant)
	}
	if s.Total != 80 {
		t.Fatalf("expected total 80, got %d", s.Total)
	}

	m.SetValue(Determination, 90)
	s = m.Summarize()
	if s.Dominant != "Determination" {
		t.Fatalf("expected Determination dominant, got %q", s.Dominant)
	}
	if got := s.Percentages["Determination"]; got != 0.9 {
		t.Fatalf("expected percentage 0.9, got %v", got)
	}
}

func TestStabilityDropsWithVolatility(t *testing.T) {
	m, _ := newTestModel(t, Config{})

	m.Update(Affection, 5)
	m.Update(Affection, 5)
	calm := m.Summarize().Stability
	if calm != 1.0 {
		t.Fatalf("identical deltas should be perfectly stable, got %v", calm)
	}

	m.Update(Affection, 60)
	m.Update(Affection, -60)
	volatile := m.Summarize().Stability
	if volatile >= calm {
		t.Fatalf("expected stability to drop, got %v >= %v", volatile, calm)
	}
	if volatile < 0 {
		t.Fatalf("stability below zero: %v", volatile)
	}
}

func TestResetKeepsHistory(t *testing.T) {
	m, _ := newTestModel(t, Config{})

	m.Update(Obsession, 35)
	m.Update(Anger, 20)
	before := len(m.History())

	m.Reset()
	for _, a := range Axes() {
		if v := m.Value(a); v != 0 {
			t.Fatalf("axis %s not zeroed: %d", a, v)
		}
	}
	if got := len(m.History()); got != before {
		t.Fatalf("reset changed history length: %d != %d", got, before)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	m, clock := newTestModel(t, Config{DecayPerMinute: 2})

	m.Update(Obsession, 42)
	clock.Advance(30 * time.Second)
	m.Update(Determination, 17)
	snap := m.Snapshot()

	restored, _ := newTestModel(t, Config{DecayPerMinute: 2})
	restored.Restore(snap)

	for _, a := range Axes() {
		if restored.Value(a) != m.Value(a) {
			t.Fatalf("axis %s mismatch after restore: %d != %d", a, restored.Value(a), m.Value(a))
		}
	}
	if len(restored.History()) != len(snap.History) {
		t.Fatalf("history not restored: %d != %d", len(restored.History()), len(snap.History))
	}
}

func TestRestoreSkipsUnknownAxes(t *testing.T) {
	m, _ := newTestModel(t, Config{})

	snap := Snapshot{Axes: map[string]AxisState{
		"Obsession": {Value: 25},
		"Nostalgia": {Value: 80},
	}}
	m.Restore(snap)

	if got := m.Value(Obsession); got != 25 {
		t.Fatalf("known axis not restored: %d", got)
	}
	for _, a := range Axes() {
		if a != Obsession && m.Value(a) != 0 {
			t.Fatalf("unexpected axis %s value %d", a, m.Value(a))
		}
	}
}

func TestSnapshotCapsHistoryWindow(t *testing.T) {
	m, _ := newTestModel(t, Config{HistoryWindow: 5})

	for i := 0; i < 20; i++ {
		m.Update(Anger, 1)
	}
	snap := m.Snapshot()
	if len(snap.History) != 5 {
		t.Fatalf("expected capped history of 5, got %d", len(snap.History))
	}
	if len(m.History()) != 20 {
		t.Fatalf("in-memory history should be unbounded, got %d", len(m.History()))
	}
}
