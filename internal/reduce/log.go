package reduce

// RecordKind says why a record was logged.
type RecordKind uint8

const (
	// RecordRemoved is a zero/sentinel optional field that was detached.
	RecordRemoved RecordKind = iota
	// RecordFlagged is a negative amount left in place.
	RecordFlagged
	// RecordMalformed is an unparseable value left in place.
	RecordMalformed
	// RecordContainer is a structural container removed after its
	// children were reduced away.
	RecordContainer
	// RecordNegativeRemoved is a negative amount removed by explicit
	// request, never as part of the silent zero cleanup.
	RecordNegativeRemoved
)

func (k RecordKind) String() string {
	switch k {
	case RecordRemoved:
		return "removed"
	case RecordFlagged:
		return "flagged"
	case RecordMalformed:
		return "malformed"
	case RecordContainer:
		return "container-removed"
	case RecordNegativeRemoved:
		return "negative-removed"
	}
	return "unknown"
}

// Removal reports whether the record corresponds to a detached element.
func (k RecordKind) Removal() bool {
	return k == RecordRemoved || k == RecordContainer || k == RecordNegativeRemoved
}

// Record is one immutable change-log entry. Paths point into the
// original document, so the log reads top to bottom the way a person
// scans the input file.
type Record struct {
	Path   string
	Field  string
	Value  string
	Kind   RecordKind
	Reason string
}

// Log accumulates records in document order.
type Log struct {
	items []Record
}

// NewLog returns an empty change log.
func NewLog() *Log {
	return &Log{items: make([]Record, 0)}
}

// Append adds a record. Records are never mutated afterwards.
func (l *Log) Append(r Record) {
	l.items = append(l.items, r)
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.items)
}

// Items returns a read-only view of the records. Callers must not
// modify the returned slice.
func (l *Log) Items() []Record {
	return l.items
}

// Removals counts records that detached an element.
func (l *Log) Removals() int {
	n := 0
	for i := range l.items {
		if l.items[i].Kind.Removal() {
			n++
		}
	}
	return n
}

// HasWarnings reports whether any flagged or malformed record exists.
func (l *Log) HasWarnings() bool {
	for i := range l.items {
		k := l.items[i].Kind
		if k == RecordFlagged || k == RecordMalformed {
			return true
		}
	}
	return false
}
