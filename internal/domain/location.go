package domain

// Location pins an entity to a validated position plus an optional postal
// address.
type Location struct {
	Pos     MapPoint
	Address *Address
}
