package utils

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Duration accepts either a duration string ("150ms") or integer nanoseconds
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for YAML and TOML
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if ns, err := strconv.ParseInt(s, 10, 64); err == nil {
		d.Duration = time.Duration(ns)
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration] invalid duration %q", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.UnmarshalText([]byte(s))
	}
	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return errors.Wrapf(err, "[Duration] invalid duration %s", data)
	}
	d.Duration = time.Duration(ns)
	return nil
}
