// Package timeline parses Semantic Location History export documents into
// typed activity-segment and place-visit records.
package timeline

// e7Scale converts fixed-point E7 coordinates to decimal degrees.
const e7Scale = 1e7

// FromE7 converts a fixed-point E7 coordinate to decimal degrees.
// A nil input stays nil; absence is never turned into 0.
func FromE7(v *int64) *float64 {
	if v == nil {
		return nil
	}
	deg := float64(*v) / e7Scale
	return &deg
}
