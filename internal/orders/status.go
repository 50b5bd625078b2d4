package orders

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Statuses in display order.
var Statuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of the known statuses. UpdateOrderStatus
// does not enforce a transition table; any known status may follow any other.
func (s Status) Valid() bool {
	for _, k := range Statuses {
		if s == k {
			return true
		}
	}
	return false
}

// IsTerminal is informational only.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
