package loaders

import (
	"fmt"
	"math"
	"time"

	"github.com/daler-sz/adaptix/crown"
	"github.com/daler-sz/adaptix/options"
)

// Time returns a loader producing time.Time. CategoryDatetime permits
// RFC 3339 strings; CategoryTimestamp permits numeric Unix seconds.
func Time(allowed options.CategoryEnum) crown.Loader {
	return func(raw any) (any, error) {
		if t, ok := raw.(time.Time); ok {
			return t, nil
		}

		if s, ok := raw.(string); ok && allowed.Has(options.CategoryDatetime) {
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return nil, fmt.Errorf("cannot load time from %q: %w", s, err)
			}

			return t, nil
		}

		if allowed.Has(options.CategoryTimestamp) {
			if n, ok := asInt64(raw); ok {
				return time.Unix(n, 0).UTC(), nil
			}

			if f, ok := asFloat64(raw); ok {
				sec, frac := math.Modf(f)
				return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
			}
		}

		return nil, fmt.Errorf("cannot load time from %T", raw)
	}
}

// TimeFormat returns a loader parsing string input with an explicit
// layout, for formats beyond RFC 3339.
func TimeFormat(layout string) crown.Loader {
	return func(raw any) (any, error) {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot load time from %T", raw)
		}

		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, fmt.Errorf("time does not match format %q: %w", layout, err)
		}

		return t, nil
	}
}

// Duration returns a loader producing time.Duration. CategoryDuration
// permits textual durations such as "2h45m", CategoryNanoseconds
// integer nanosecond counts, CategorySeconds floating-point seconds.
func Duration(allowed options.CategoryEnum) crown.Loader {
	return func(raw any) (any, error) {
		if d, ok := raw.(time.Duration); ok {
			return d, nil
		}

		if s, ok := raw.(string); ok && allowed.Has(options.CategoryDuration) {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, fmt.Errorf("cannot load duration from %q: %w", s, err)
			}

			return d, nil
		}

		if n, ok := asInt64(raw); ok && allowed.Has(options.CategoryNanoseconds) {
			return time.Duration(n), nil
		}

		if f, ok := asFloat64(raw); ok && allowed.Has(options.CategorySeconds) {
			return time.Duration(f * float64(time.Second)), nil
		}

		return nil, fmt.Errorf("cannot load duration from %T", raw)
	}
}
