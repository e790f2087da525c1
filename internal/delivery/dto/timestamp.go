package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// TimestampLayout is the zone-less layout used on the wire.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp is a naive date-time. It accepts RFC 3339 or a zone-less
// value and always renders without a zone.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// TimestampPtr returns nil for a nil time.
func TimestampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := NewTimestamp(*t)
	return &ts
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse(TimestampLayout, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// TimePtr unwraps t, returning nil for nil or zero values.
func (t *Timestamp) TimePtr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}
