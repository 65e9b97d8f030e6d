package schedule

// TableStore owns the session's schedule table. Load returns the current
// table; Replace swaps in an updated copy atomically.
type TableStore interface {
	Load() Table
	Replace(t Table)
}
