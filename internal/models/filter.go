package models

// ListFilter selects which todos a listing returns
type ListFilter int

// ============================================================================
// LIST FILTER CONSTANTS
// ============================================================================

const (
	// FilterAll returns every todo
	FilterAll ListFilter = iota
	// FilterCompleted returns only todos with completed = true
	FilterCompleted
	// FilterPending returns only todos with completed = false
	FilterPending
)

// String returns the filter name as shown in logs and JSON output
func (f ListFilter) String() string {
	switch f {
	case FilterCompleted:
		return "completed"
	case FilterPending:
		return "pending"
	default:
		return "all"
	}
}

// Matches reports whether a todo passes the filter
func (f ListFilter) Matches(t *Todo) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return t.IsPending()
	default:
		return true
	}
}
