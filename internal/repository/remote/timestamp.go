package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// timestamp Время из хранилища: объект {_seconds, _nanoseconds} или строка RFC 3339
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			t.Time = time.Time{}
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
		t.Time = parsed.UTC()
		return nil
	}

	var raw struct {
		Seconds     int64 `json:"_seconds"`
		Nanoseconds int64 `json:"_nanoseconds"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	t.Time = time.Unix(raw.Seconds, raw.Nanoseconds).UTC()
	return nil
}
