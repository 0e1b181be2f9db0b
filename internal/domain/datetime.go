package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime decodes either DateTimeLayout or RFC 3339 and always encodes DateTimeLayout in UTC.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(DateTimeLayout))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("datetime must be a string: %w", err)
	}
	t, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func ParseDateTime(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeLayout, raw, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime %q must match %q or RFC 3339", raw, DateTimeLayout)
	}
	return t.UTC(), nil
}
