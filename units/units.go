// Package units defines the internal system of units.
//
// Times are measured in nanoseconds and distances in millimetres. Multiply a
// quantity by its unit to convert it into internal units and divide by the
// unit to convert back:
//
//	tick := 0.5 * units.Microsecond // 500 internal time units
//	us := tick / units.Microsecond  // 0.5
package units

// Time.
const (
	Nanosecond  = 1.0
	Microsecond = 1000 * Nanosecond
	Millisecond = 1000 * Microsecond
	Second      = 1000 * Millisecond
)

// Length.
const (
	Millimeter = 1.0
	Micrometer = Millimeter / 1000
	Centimeter = 10 * Millimeter
	Meter      = 1000 * Millimeter
)
