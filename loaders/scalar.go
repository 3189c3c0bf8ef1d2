package loaders

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/options"
)

// String returns a loader that accepts string values only.
func String() crown.Loader {
	return func(raw any) (any, error) {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot load string from %T", raw)
		}

		return s, nil
	}
}

// Int returns a loader producing int64. Any integer input is accepted,
// as is a float carrying an integral value, since JSON decoding hands
// over numbers as float64. CategoryTextNumber additionally permits
// decimal strings.
func Int(allowed options.CategoryEnum) crown.Loader {
	return func(raw any) (any, error) {
		if n, ok := asInt64(raw); ok {
			return n, nil
		}

		if f, ok := asFloat64(raw); ok {
			if f == math.Trunc(f) && !math.IsInf(f, 0) {
				return int64(f), nil
			}

			return nil, fmt.Errorf("cannot load int64 from %v: fractional part", raw)
		}

		if s, ok := raw.(string); ok && allowed.Has(options.CategoryTextNumber) {
			n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot load int64 from %q: %w", s, err)
			}

			return n, nil
		}

		return nil, fmt.Errorf("cannot load int64 from %T", raw)
	}
}

// Float returns a loader producing float64 from any numeric input.
// CategoryTextNumber additionally permits textual numbers.
func Float(allowed options.CategoryEnum) crown.Loader {
	return func(raw any) (any, error) {
		if f, ok := asFloat64(raw); ok {
			return f, nil
		}

		if n, ok := asInt64(raw); ok {
			return float64(n), nil
		}

		if s, ok := raw.(string); ok && allowed.Has(options.CategoryTextNumber) {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("cannot load float64 from %q: %w", s, err)
			}

			return f, nil
		}

		return nil, fmt.Errorf("cannot load float64 from %T", raw)
	}
}

// Bool returns a loader producing bool. CategoryNumericBool permits 0
// and 1; CategoryTextualBool permits yes, no, on, off, true and false.
func Bool(allowed options.CategoryEnum) crown.Loader {
	return func(raw any) (any, error) {
		if b, ok := raw.(bool); ok {
			return b, nil
		}

		if n, ok := asInt64(raw); ok && allowed.Has(options.CategoryNumericBool) {
			switch n {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}

			return nil, fmt.Errorf("cannot load bool from %d", n)
		}

		if s, ok := raw.(string); ok && allowed.Has(options.CategoryTextualBool) {
			switch strings.ToLower(s) {
			case "yes", "on", "true":
				return true, nil
			case "no", "off", "false":
				return false, nil
			}

			return nil, fmt.Errorf("cannot load bool from %q", s)
		}

		return nil, fmt.Errorf("cannot load bool from %T", raw)
	}
}

// None returns a loader that accepts only nil, for fields bound to
// positions that must hold an explicit null.
func None() crown.Loader {
	return func(raw any) (any, error) {
		if raw != nil {
			return nil, fmt.Errorf("cannot load none from %T", raw)
		}

		return nil, nil
	}
}

func asInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	}

	return 0, false
}

func asFloat64(raw any) (float64, bool) {
	switch f := raw.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}

	return 0, false
}
