package model

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Lenient converts loosely typed payload values to a decimal. Strings,
// JSON numbers and Go numerics are accepted; anything else, including
// unparsable strings and non-finite floats, yields 0.
func Lenient(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case string:
		return parseDecimalString(x)
	case json.Number:
		return parseDecimalString(x.String())
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case int32:
		return decimal.NewFromInt32(x)
	case bool:
		if x {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// LenientFloat is Lenient reduced to a float64.
func LenientFloat(v any) float64 {
	f, _ := Lenient(v).Float64()
	return f
}

func finite(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseDecimalString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
