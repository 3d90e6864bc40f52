package domain

// Represents a delivery driver who can be assigned to a route.
type Driver struct {
	DriverID string
	Name     string
	Phone    string
	Status   string
}
