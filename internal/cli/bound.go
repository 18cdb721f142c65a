package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseBound parses an interval bound. Besides plain floats it accepts the
// constants pi and e with an optional sign, coefficient and divisor:
//
//	"1.5", "-2", "pi", "-pi", "pi/2", "3*pi/4", "2*e"
func ParseBound(s string) (float64, error) {
	src := strings.ToLower(strings.TrimSpace(s))
	if v, err := strconv.ParseFloat(src, 64); err == nil {
		return v, nil
	}

	sign := 1.0
	if rest, ok := strings.CutPrefix(src, "-"); ok {
		sign, src = -1, rest
	}

	num, den, hasDen := strings.Cut(src, "/")

	coef := 1.0
	if c, name, ok := strings.Cut(num, "*"); ok {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrBadBound)
		}
		coef, num = v, name
	}

	var base float64
	switch num {
	case "pi":
		base = math.Pi
	case "e":
		base = math.E
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrBadBound)
	}

	v := sign * coef * base
	if hasDen {
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("%q: %w", s, ErrBadBound)
		}
		v /= d
	}

	return v, nil
}
