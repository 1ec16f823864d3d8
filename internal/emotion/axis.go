// Package emotion tracks five bounded emotion values with lazy time decay.
package emotion

import "fmt"

// Axis is one of the five fixed emotional dimensions. The set is closed:
// axes are not extensible at runtime.
type Axis int

const (
	Obsession Axis = iota
	Anger
	Depression
	Affection
	Determination

	axisCount
)

var axisNames = [axisCount]string{
	Obsession:     "Obsession",
	Anger:         "Anger",
	Depression:    "Depression",
	Affection:     "Affection",
	Determination: "Determination",
}

// String returns the axis display name.
func (a Axis) String() string {
	if !a.valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

func (a Axis) valid() bool {
	return a >= 0 && a < axisCount
}

// Axes returns all axes in enumeration order. The order is the tie-break
// order for dominant-axis resolution.
func Axes() []Axis {
	return []Axis{Obsession, Anger, Depression, Affection, Determination}
}

// AxisByName resolves a display name to its axis.
func AxisByName(name string) (Axis, error) {
	for _, a := range Axes() {
		if axisNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown emotion axis %q", name)
}
