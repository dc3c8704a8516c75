// Package flashlog implements the append-only data log store behind the
// board's logging operations. Rows are key/value fields; keys become
// columns the first time they appear, and an optional timestamp column
// is prepended to every row.
//
// The store is bounded like the flash region it models: once the
// configured capacity is reached, commits fail with hal.ErrNoResources
// and the caller decides what to do about it.
package flashlog

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"ubithal/hal"
)

// field is one key/value pair of an open row, in append order.
type field struct {
	key   string
	value string
}

// Store is an in-memory data log with flash-like capacity semantics.
// Single-context like the rest of the board surface: no locking.
type Store struct {
	capacity int
	used     int

	cols     []string
	colIndex map[string]int
	rows     [][]string

	cur   []field
	inRow bool

	mirror    io.Writer
	mirroring bool

	format hal.TimestampFormat
	frozen bool // format locked once the first row commits
	start  time.Time
	now    func() time.Time
}

// New returns a store holding at most capacity bytes of field data.
// mirror, if non-nil, receives committed rows as CSV lines when
// mirroring is enabled.
func New(capacity int, mirror io.Writer) *Store {
	return &Store{
		capacity: capacity,
		colIndex: make(map[string]int),
		mirror:   mirror,
		now:      time.Now,
		start:    time.Now(),
	}
}

// timeColumn returns the timestamp column heading for a format.
func timeColumn(f hal.TimestampFormat) string {
	switch f {
	case hal.TimestampMilliseconds:
		return "Time (milliseconds)"
	case hal.TimestampSeconds:
		return "Time (seconds)"
	case hal.TimestampMinutes:
		return "Time (minutes)"
	case hal.TimestampHours:
		return "Time (hours)"
	case hal.TimestampDays:
		return "Time (days)"
	}
	return ""
}

// timeValue renders the elapsed time since the store's origin in the
// configured unit.
func (s *Store) timeValue() string {
	elapsed := s.now().Sub(s.start)
	var n int64
	switch s.format {
	case hal.TimestampMilliseconds:
		n = elapsed.Milliseconds()
	case hal.TimestampSeconds:
		n = int64(elapsed.Seconds())
	case hal.TimestampMinutes:
		n = int64(elapsed.Minutes())
	case hal.TimestampHours:
		n = int64(elapsed.Hours())
	case hal.TimestampDays:
		n = int64(elapsed.Hours() / 24)
	}
	return strconv.FormatInt(n, 10)
}

// BeginRow starts a new row, discarding any uncommitted fields.
func (s *Store) BeginRow() error {
	s.cur = s.cur[:0]
	s.inRow = true
	return nil
}

// LogData appends one field to the open row.
func (s *Store) LogData(key, value string) error {
	if !s.inRow {
		return fmt.Errorf("flashlog: no open row")
	}
	s.cur = append(s.cur, field{key: key, value: value})
	return nil
}

// EndRow commits the open row. An empty row commits as a no-op. The row
// is dropped and hal.ErrNoResources returned when it does not fit.
func (s *Store) EndRow() error {
	if !s.inRow {
		return fmt.Errorf("flashlog: no open row")
	}
	s.inRow = false
	if len(s.cur) == 0 {
		return nil
	}

	// Size the row before touching the layout: a rejected commit must
	// not freeze the timestamp format or leave new columns behind.
	size := 0
	for _, f := range s.cur {
		size += len(f.key) + len(f.value) + 2
	}
	if s.used+size > s.capacity {
		return fmt.Errorf("flashlog: store full: %w", hal.ErrNoResources)
	}

	// Lock in the timestamp format on first commit; later changes are
	// ignored until a full erase.
	if !s.frozen {
		s.frozen = true
		if s.format != hal.TimestampNone {
			s.ensureColumn(timeColumn(s.format))
		}
	}

	for _, f := range s.cur {
		s.ensureColumn(f.key)
	}

	row := make([]string, len(s.cols))
	if s.format != hal.TimestampNone {
		if i, ok := s.colIndex[timeColumn(s.format)]; ok {
			row[i] = s.timeValue()
		}
	}
	for _, f := range s.cur {
		row[s.colIndex[f.key]] = f.value
	}
	s.rows = append(s.rows, row)
	s.used += size

	if s.mirroring && s.mirror != nil {
		fmt.Fprintf(s.mirror, "%s\r\n", strings.Join(row, ","))
	}
	return nil
}

func (s *Store) ensureColumn(name string) {
	if _, ok := s.colIndex[name]; ok {
		return
	}
	s.colIndex[name] = len(s.cols)
	s.cols = append(s.cols, name)
	// Widen committed rows so each stays aligned with the column set.
	for i, row := range s.rows {
		if len(row) < len(s.cols) {
			s.rows[i] = append(row, make([]string, len(s.cols)-len(row))...)
		}
	}
}

// Clear deletes the logged rows. A full erase also discards the column
// layout, unfreezes the timestamp format and resets the time origin.
func (s *Store) Clear(fullErase bool) error {
	s.rows = nil
	s.used = 0
	s.cur = s.cur[:0]
	s.inRow = false
	if fullErase {
		s.cols = nil
		s.colIndex = make(map[string]int)
		s.frozen = false
		s.start = s.now()
	}
	return nil
}

// SetMirroring enables or disables mirroring of committed rows.
func (s *Store) SetMirroring(serial bool) {
	s.mirroring = serial

	// Emit the current header so a freshly attached reader can make
	// sense of the rows that follow.
	if serial && s.mirror != nil && len(s.cols) > 0 {
		fmt.Fprintf(s.mirror, "%s\r\n", strings.Join(s.cols, ","))
	}
}

// SetTimestamp selects the timestamp column. Ignored once the first row
// has been committed.
func (s *Store) SetTimestamp(format hal.TimestampFormat) {
	if s.frozen {
		return
	}
	s.format = format
}

// Columns returns the discovered column headings in order.
func (s *Store) Columns() []string {
	return append([]string(nil), s.cols...)
}

// Rows returns the committed rows, each aligned with Columns.
func (s *Store) Rows() [][]string {
	out := make([][]string, len(s.rows))
	for i, row := range s.rows {
		r := make([]string, len(s.cols))
		copy(r, row)
		out[i] = r
	}
	return out
}

// Used returns the number of capacity bytes consumed.
func (s *Store) Used() int {
	return s.used
}

// SetClock overrides the store's time source. Test hook.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
	s.start = now()
}
