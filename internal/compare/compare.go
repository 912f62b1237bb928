// Package compare provides the single comparator shared by every list page
// and by the data table's sort helper.
package compare

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Kind selects how two cell values are ordered
type Kind int

const (
	Auto   Kind = iota // number, then bool, then date, then string
	Number             // numeric order, strings are parsed, the rest after
	Date               // chronological order, strings are parsed, the rest after
	String             // case-insensitive lexical order
	Bool               // false before true
)

// String returns the kind name used in config files
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Date:
		return "date"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return "auto"
	}
}

// Direction is a sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// ParseDirection accepts "asc" or "desc" in any case
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return "", fmt.Errorf("invalid sort direction %q", s)
}

// dateLayouts are tried in order when a string has to be read as a date
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Values orders a and b. The result is negative when a sorts first in the
// given direction, positive when b does, zero when they are equal.
// Missing values (nil, nil pointers) sort before present ones ascending.
func Values(a, b any, kind Kind, dir Direction) int {
	a, b = deref(a), deref(b)

	var c int
	switch {
	case a == nil && b == nil:
		c = 0
	case a == nil:
		c = -1
	case b == nil:
		c = 1
	default:
		c = ordered(a, b, kind)
	}

	if dir == Desc {
		return -c
	}
	return c
}

// Func adapts Values to slices.SortStableFunc for rows of type T
func Func[T any](value func(T) any, kind Kind, dir Direction) func(a, b T) int {
	return func(a, b T) int {
		return Values(value(a), value(b), kind, dir)
	}
}

// ordered ranks values by class before comparing them, so a column
// mixing numbers, dates and text still sorts the same whatever order the
// rows arrive in. Values a kind cannot read sort after the ones it can.
func ordered(a, b any, kind Kind) int {
	ka, kb := classify(a, kind), classify(b, kind)
	if c := cmp.Compare(ka.class, kb.class); c != 0 {
		return c
	}
	switch ka.class {
	case numberClass:
		return cmp.Compare(ka.value.(float64), kb.value.(float64))
	case boolClass:
		return compareBool(ka.value.(bool), kb.value.(bool))
	case dateClass:
		return ka.value.(time.Time).Compare(kb.value.(time.Time))
	}
	return compareStrings(a, b)
}

// class ranks within a sort; lower classes come first ascending
type class int

const (
	numberClass class = iota
	boolClass
	dateClass
	textClass
)

type classified struct {
	class class
	value any
}

func classify(v any, kind Kind) classified {
	switch kind {
	case String:
		return classified{textClass, v}
	case Number:
		if f, ok := toFloat(v); ok {
			return classified{numberClass, f}
		}
	case Date:
		if t, ok := toTime(v); ok {
			return classified{dateClass, t}
		}
	case Bool:
		if b, ok := v.(bool); ok {
			return classified{boolClass, b}
		}
	default:
		if f, ok := toFloat(v); ok {
			return classified{numberClass, f}
		}
		if b, ok := v.(bool); ok {
			return classified{boolClass, b}
		}
		if t, ok := toTime(v); ok {
			return classified{dateClass, t}
		}
	}
	return classified{textClass, v}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func compareStrings(a, b any) int {
	return strings.Compare(
		strings.ToLower(fmt.Sprint(a)),
		strings.ToLower(fmt.Sprint(b)),
	)
}

func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
