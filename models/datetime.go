// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// localDateTimeLayout is the zone-less ISO-8601 layout the backend uses for
// event timestamps.
const localDateTimeLayout = "2006-01-02T15:04:05"

// DateTime is a timestamp that accepts both RFC 3339 values and zone-less
// local date-times ("2026-05-01T18:30:00", optional fraction). Zone-less
// values are interpreted in the local time zone.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.ParseInLocation(localDateTimeLayout, trimFraction(s), time.Local)
	if err != nil {
		return fmt.Errorf("invalid date-time %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON writes the zone-less layout the backend expects.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Local().Format(localDateTimeLayout))
}

func trimFraction(s string) string {
	for i := len(localDateTimeLayout); i < len(s); i++ {
		if s[i] == '.' {
			return s[:i]
		}
	}
	return s
}
