package domain

import "time"

// TimestampMs is a point in time with millisecond precision. It wraps the
// raw integer so second-precision values cannot be mixed in by accident.
type TimestampMs int64

// TimestampMsFromInner wraps a raw millisecond value. Negative values are
// valid pre-epoch instants and pass through unchanged.
func TimestampMsFromInner(ms int64) TimestampMs { return TimestampMs(ms) }

// IntoInner returns the raw millisecond value.
func (t TimestampMs) IntoInner() int64 { return int64(t) }

// Time converts to a time.Time in UTC.
func (t TimestampMs) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// Seconds truncates to second precision for the legacy wire fields.
func (t TimestampMs) Seconds() int64 { return int64(t) / 1000 }

// NowMs returns the current instant.
func NowMs() TimestampMs { return TimestampMs(time.Now().UnixMilli()) }
