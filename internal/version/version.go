// Package version defines the write ordering used for last-writer-wins
// reconciliation: a total order over (timestamp, writer id) pairs.
package version

import (
	"fmt"
	"time"
)

// Version identifies a write. TimestampUS is wall-clock microseconds since
// epoch captured at the coordinator; WriterID breaks timestamp ties.
type Version struct {
	TimestampUS uint64
	WriterID    string
}

// Now mints a version for a write coordinated by writerID.
func Now(writerID string) Version {
	return Version{
		TimestampUS: uint64(time.Now().UnixMicro()),
		WriterID:    writerID,
	}
}

// NewerThan reports whether v is strictly newer than other. Higher timestamp
// wins; equal timestamps fall back to lexicographic writer id. Equal
// versions are not newer than each other, so re-applying the same version is
// a no-op.
func (v Version) NewerThan(other Version) bool {
	if v.TimestampUS != other.TimestampUS {
		return v.TimestampUS > other.TimestampUS
	}
	return v.WriterID > other.WriterID
}

func (v Version) String() string {
	return fmt.Sprintf("%d@%s", v.TimestampUS, v.WriterID)
}
