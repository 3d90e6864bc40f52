package domain

import "time"

// Represents a single delivery order handled by the system.
// Coordinates are optional: orders are imported from CSV or external feeds
// and may not have been geocoded yet. Orders without coordinates are
// excluded from route sequencing by the caller.
type Order struct {
	OrderID   string
	Reference string
	Address   string
	Lat       *float64
	Lon       *float64
	Status    string
	RouteID   *string
	CreatedAt time.Time
}

// Report whether the order carries coordinates and is eligible for sequencing.
func (o *Order) HasCoordinates() bool { return o.Lat != nil && o.Lon != nil }

// Convert the order into a Stop for the sequencer.
// Callers must check HasCoordinates first; a stop built from an order
// without coordinates would sequence at (0, 0).
func (o *Order) Stop() Stop {
	stop := Stop{ID: o.OrderID, Label: o.Reference}
	if o.Lat != nil {
		stop.Lat = *o.Lat
	}
	if o.Lon != nil {
		stop.Lon = *o.Lon
	}
	return stop
}
