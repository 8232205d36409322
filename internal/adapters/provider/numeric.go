package provider

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/beastscore/internal/domain/model"
)

// Number decodes a JSON number, numeric string or null into a decimal.
// It never fails; unparsable input decodes to 0.
type Number struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = model.Lenient(v)
	return nil
}

// Flag decodes true, "true" or "1" as set; anything else is unset.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	switch strings.ToLower(strings.Trim(string(b), `"`)) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// unixSeconds converts a seconds timestamp to UTC. Non-positive values give
// the zero time.
func unixSeconds(n Number) time.Time {
	secs := n.IntPart()
	if secs <= 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

// isoTime parses an RFC 3339 timestamp, returning the zero time on failure.
func isoTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
