package emotion

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Clock supplies the current time. Hosts inject it so decay is deterministic
// under test; it must never move backward between calls.
type Clock func() time.Time

// Config bounds the model and sets its decay behavior.
type Config struct {
	Min            int
	Max            int
	DecayPerMinute float64
	// HistoryWindow caps how many history entries a snapshot carries.
	HistoryWindow int
}

func (c Config) withDefaults() Config {
	if c.Max == 0 {
		c.Max = 100
	}
	if c.HistoryWindow == 0 {
		c.HistoryWindow = 100
	}
	return c
}

// HistoryEntry records one mutation. Axis is stored by display name so
// persisted history survives axis renames by being skipped, not by failing.
type HistoryEntry struct {
	Axis      string    `json:"axis"`
	OldValue  float64   `json:"old_value"`
	NewValue  float64   `json:"new_value"`
	Delta     int       `json:"delta"`
	Timestamp time.Time `json:"timestamp"`
}

type axisValue struct {
	current    float64
	lastUpdate time.Time
}

// Model holds the five emotion values and their change history. It is not
// safe for concurrent use; hosts serialize calls.
type Model struct {
	cfg     Config
	clock   Clock
	logger  *slog.Logger
	values  [axisCount]axisValue
	history []HistoryEntry
}

// NewModel creates a model with every axis at zero.
func NewModel(cfg Config, clock Clock, logger *slog.Logger) (*Model, error) {
	cfg = cfg.withDefaults()
	if cfg.Max <= cfg.Min {
		return nil, fmt.Errorf("emotion bounds [%d,%d] are empty", cfg.Min, cfg.Max)
	}
	if cfg.DecayPerMinute < 0 {
		return nil, fmt.Errorf("decay rate %v is negative", cfg.DecayPerMinute)
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	m := &Model{cfg: cfg, clock: clock, logger: logger}
	now := clock()
	for i := range m.values {
		m.values[i] = axisValue{lastUpdate: now}
	}
	return m, nil
}

func (m *Model) clamp(v float64) float64 {
	return math.Min(float64(m.cfg.Max), math.Max(float64(m.cfg.Min), v))
}

// Update applies decay accrued since the axis was last touched, then the
// delta, clamps, and records a history entry. Unknown axes are a silent
// no-op; name-based callers go through UpdateByName which rejects them.
func (m *Model) Update(axis Axis, delta int) {
	if !axis.valid() {
		return
	}
	now := m.clock()
	v := &m.values[axis]

	elapsed := now.Sub(v.lastUpdate).Minutes()
	if elapsed < 0 {
		// Clock moved backward; never let decay run negative and raise the value.
		elapsed = 0
	}
	decay := m.cfg.DecayPerMinute * elapsed

	old := v.current
	v.current = m.clamp(v.current + float64(delta) - decay)
	v.lastUpdate = now

	m.history = append(m.history, HistoryEntry{
		Axis:      axis.String(),
		OldValue:  old,
		NewValue:  v.current,
		Delta:     delta,
		Timestamp: now,
	})
}

// UpdateByName resolves an axis display name and updates it. The error for
// an unrecognized name is the caller's cue to skip that single effect.
func (m *Model) UpdateByName(name string, delta int) error {
	axis, err := AxisByName(name)
	if err != nil {
		return err
	}
	m.Update(axis, delta)
	return nil
}

// SetValue sets an axis directly, bypassing decay.
func (m *Model) SetValue(axis Axis, value int) {
	if !axis.valid() {
		return
	}
	now := m.clock()
	v := &m.values[axis]

	old := v.current
	v.current = m.clamp(float64(value))
	v.lastUpdate = now

	m.history = append(m.history, HistoryEntry{
		Axis:      axis.String(),
		OldValue:  old,
		NewValue:  v.current,
		Delta:     int(math.Round(v.current - old)),
		Timestamp: now,
	})
}

// Value returns the current value of an axis, rounded to the data model's
// bounded integer.
func (m *Model) Value(axis Axis) int {
	if !axis.valid() {
		return 0
	}
	return int(math.Round(m.values[axis].current))
}

// MeetsThreshold reports whether an axis has reached a value. Gameplay
// gates key off this rather than comparing raw values themselves.
func (m *Model) MeetsThreshold(axis Axis, threshold int) bool {
	return m.Value(axis) >= threshold
}

// Percentage returns the axis position within [Min,Max] as 0..1.
func (m *Model) Percentage(axis Axis) float64 {
	if !axis.valid() {
		return 0
	}
	return (m.values[axis].current - float64(m.cfg.Min)) / float64(m.cfg.Max-m.cfg.Min)
}

// Summary is a point-in-time view over all axes.
type Summary struct {
	Values      map[string]int     `json:"values"`
	Percentages map[string]float64 `json:"percentages"`
	Total       int                `json:"total_value"`
	// Dominant is the display name of the argmax axis, or "none" when the
	// maximum value is not positive. Ties break by enumeration order.
	Dominant  string  `json:"dominant_emotion"`
	Stability float64 `json:"emotion_stability"`
}

// Summarize computes the current summary.
func (m *Model) Summarize() Summary {
	s := Summary{
		Values:      make(map[string]int, axisCount),
		Percentages: make(map[string]float64, axisCount),
		Dominant:    "none",
	}

	best := Obsession
	for _, a := range Axes() {
		v := m.Value(a)
		s.Values[a.String()] = v
		s.Percentages[a.String()] = m.Percentage(a)
		s.Total += v
		if v > m.Value(best) {
			best = a
		}
	}
	if m.Value(best) > 0 {
		s.Dominant = best.String()
	}
	s.Stability = m.stability()
	return s
}

// stability scores recent volatility: 1.0 is perfectly stable, dropping
// toward 0 as the variance of the last ten deltas grows.
func (m *Model) stability() float64 {
	recent := m.history
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	if len(recent) == 0 {
		return 1.0
	}

	mean := 0.0
	for _, e := range recent {
		mean += float64(e.Delta)
	}
	mean /= float64(len(recent))

	variance := 0.0
	for _, e := range recent {
		d := float64(e.Delta) - mean
		variance += d * d
	}
	variance /= float64(len(recent))

	return math.Max(0, 1.0-variance/100.0)
}

// History returns the full in-memory mutation log.
func (m *Model) History() []HistoryEntry {
	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

// Reset zeroes every axis. History is kept and no entries are appended;
// a reset is not a narrative mutation.
func (m *Model) Reset() {
	now := m.clock()
	for i := range m.values {
		m.values[i].current = m.clamp(0)
		m.values[i].lastUpdate = now
	}
}

// AxisState is the persisted form of one axis.
type AxisState struct {
	Value      float64   `json:"value"`
	LastUpdate time.Time `json:"last_update"`
}

// Snapshot is the persisted form of the model: per-axis state keyed by
// display name plus a capped history window.
type Snapshot struct {
	Axes    map[string]AxisState `json:"axes"`
	History []HistoryEntry       `json:"history"`
}

// Snapshot captures the model for persistence.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{Axes: make(map[string]AxisState, axisCount)}
	for _, a := range Axes() {
		v := m.values[a]
		s.Axes[a.String()] = AxisState{Value: v.current, LastUpdate: v.lastUpdate}
	}

	hist := m.history
	if len(hist) > m.cfg.HistoryWindow {
		hist = hist[len(hist)-m.cfg.HistoryWindow:]
	}
	s.History = make([]HistoryEntry, len(hist))
	copy(s.History, hist)
	return s
}

// Restore loads a snapshot. Axis names that no longer resolve are skipped
// with a warning so stale saves still load.
func (m *Model) Restore(s Snapshot) {
	for name, state := range s.Axes {
		axis, err := AxisByName(name)
		if err != nil {
			m.logger.Warn("skipping unknown emotion axis in snapshot", "axis", name)
			continue
		}
		m.values[axis].current = m.clamp(state.Value)
		m.values[axis].lastUpdate = state.LastUpdate
	}
	m.history = make([]HistoryEntry, len(s.History))
	copy(m.history, s.History)
}
