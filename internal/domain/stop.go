package domain

// Represents a single delivery location eligible for route sequencing.
// The ID is an opaque caller-supplied token (typically an order reference)
// and is carried through the optimizer untouched. Label is a human-readable
// reference used for diagnostics only, never for computation.
type Stop struct {
	ID    string
	Label string
	Lat   float64
	Lon   float64
}

// Return the stop's position as a Coordinates value.
func (s Stop) Coordinates() Coordinates { return Coordinates{Lat: s.Lat, Lon: s.Lon} }
