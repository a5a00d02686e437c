package measure

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedRecord matches every failure caused by a line that does not
// follow the `<station>;<temperature>` grammar.
var ErrMalformedRecord = errors.New("malformed record")

// malformed is the reason a single line was rejected. Values are constants so
// returning one from the parser never allocates.
type malformed string

func (m malformed) Error() string { return string(m) }

func (m malformed) Is(target error) bool { return target == ErrMalformedRecord }

const (
	errNoDelimiter     malformed = "missing delimiter"
	errEmptyName       malformed = "empty station name"
	errDelimiterInName malformed = "delimiter in station name"
	errBadTemperature  malformed = "invalid temperature"
	errRecordTooLong   malformed = "record exceeds read buffer"
)

// RecordError describes the first malformed record a worker ran into.
type RecordError struct {
	Shard  int
	Offset int64  // absolute byte offset of the record in the file
	Line   uint64 // 1-based line number within the shard
	Record string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("shard %d, line %d (offset %d): %v: %q", e.Shard, e.Line, e.Offset, e.Err, e.Record)
}

func (e *RecordError) Unwrap() error { return e.Err }
