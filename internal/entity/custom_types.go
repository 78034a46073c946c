package entity

import (
	"fmt"
	"time"
)

// APITime handles the zone-less timestamps the remote services emit
// (LocalDateTime serialized as "2006-01-02T15:04:05", sometimes with
// fractional seconds).
type APITime struct {
	time.Time
}

const apiTimeLayout = "2006-01-02T15:04:05"

var apiTimeLayouts = []string{
	apiTimeLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.RFC3339,
}

func (t *APITime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time literal %s", s)
	}
	s = s[1 : len(s)-1] // Remove quotes

	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as api time", s)
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(apiTimeLayout) + `"`), nil
}
