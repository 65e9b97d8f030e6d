package schedule

// Table is the authoritative (date key, staff id) -> assignment mapping for
// the session. Mutation operations never modify a table in place: they build
// an updated copy through a TableWriter and swap it in atomically, so partial
// results are never observed by readers.
type Table map[string]map[string]Assignment

func (t Table) Get(dateKey, staffID string) (Assignment, bool) {
	day, ok := t[dateKey]
	if !ok {
		return Assignment{}, false
	}
	a, ok := day[staffID]
	return a, ok
}

// Reader is the read-side view shared by Table and TableWriter.
type Reader interface {
	Get(dateKey, staffID string) (Assignment, bool)
}

// TableWriter builds an updated copy of a base table with copy-on-write
// granularity of one day: the outer map is copied up front, a day's inner map
// only on its first write. Days never touched stay shared with the base.
type TableWriter struct {
	next  Table
	dirty map[string]bool
}

func NewTableWriter(base Table) *TableWriter {
	next := make(Table, len(base))
	for key, day := range base {
		next[key] = day
	}
	return &TableWriter{
		next:  next,
		dirty: make(map[string]bool),
	}
}

func (w *TableWriter) Get(dateKey, staffID string) (Assignment, bool) {
	return w.next.Get(dateKey, staffID)
}

func (w *TableWriter) Put(dateKey, staffID string, a Assignment) {
	w.day(dateKey)[staffID] = a
}

func (w *TableWriter) Delete(dateKey, staffID string) {
	if _, ok := w.next[dateKey]; !ok {
		return
	}
	delete(w.day(dateKey), staffID)
}

// Table returns the updated copy. The writer must not be used afterwards.
func (w *TableWriter) Table() Table {
	return w.next
}

func (w *TableWriter) day(dateKey string) map[string]Assignment {
	if w.dirty[dateKey] {
		return w.next[dateKey]
	}
	copied := make(map[string]Assignment, len(w.next[dateKey])+1)
	for id, a := range w.next[dateKey] {
		copied[id] = a
	}
	w.next[dateKey] = copied
	w.dirty[dateKey] = true
	return copied
}
