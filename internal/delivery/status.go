package delivery

// Status is the simulated delivery stage. Transitions are strictly ordered
// PENDING → EN_ROUTE → DELIVERED with no skipping and no way back.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusEnRoute   Status = "EN_ROUTE"
	StatusDelivered Status = "DELIVERED"
)

func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

// next returns the successor stage, or false at the terminal stage.
func (s Status) next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusEnRoute, true
	case StatusEnRoute:
		return StatusDelivered, true
	default:
		return s, false
	}
}
