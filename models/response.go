package models

import (
	"maps"
	"time"
)

// TimestampKey is the field that carries the submission time of a record.
const TimestampKey = "timestamp"

// TimestampLayout renders ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ResponseRecord holds one respondent's answers keyed by field name
// (A1..A5, G1..G5, I1..I5, L1..L5 plus identity fields) and the
// submission timestamp. Records are never mutated after creation; the
// helpers below return copies.
type ResponseRecord map[string]string

// FormatTimestamp formats t the way records store it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Clone returns an independent copy of the record.
func (r ResponseRecord) Clone() ResponseRecord {
	out := make(ResponseRecord, len(r)+1)
	maps.Copy(out, r)
	return out
}

// Stamped returns a copy of the record with the timestamp set to t,
// replacing any timestamp the caller sent.
func (r ResponseRecord) Stamped(t time.Time) ResponseRecord {
	out := r.Clone()
	out[TimestampKey] = FormatTimestamp(t)
	return out
}

// Timestamp parses the stored timestamp. ok is false when it is missing
// or malformed.
func (r ResponseRecord) Timestamp() (time.Time, bool) {
	v, ok := r[TimestampKey]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
