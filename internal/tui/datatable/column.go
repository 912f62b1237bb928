package datatable

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/dressdash/internal/compare"
)

// Placeholder is what a cell shows when its value is missing or empty.
const Placeholder = "-"

// Column describes one table column. Key addresses a field of the row, or
// names a synthetic column (e.g. "actions") that only Render understands.
type Column[T any] struct {
	Key      string
	Label    string
	Sortable bool

	// Render replaces the default stringifier when set. Its output is shown
	// as is, without the placeholder fallback.
	Render func(T) string

	// Kind selects the comparator SortRows uses for this column.
	Kind compare.Kind

	// Width caps the cell width in cells. Zero means no cap.
	Width int
}

// Identifier is implemented by rows that carry their own stable key.
type Identifier interface {
	RowID() string
}

// Fielder is implemented by rows that resolve column keys themselves.
type Fielder interface {
	Field(key string) any
}

// Value returns the raw value of key on row. Rows implementing Fielder
// answer for themselves, maps are indexed, and structs are matched by json
// tag and then by field name. Unknown keys yield nil.
func Value[T any](row T, key string) any {
	switch r := any(row).(type) {
	case Fielder:
		return r.Field(key)
	case map[string]any:
		return r[key]
	case map[string]string:
		v, ok := r[key]
		if !ok {
			return nil
		}
		return v
	}
	return structField(reflect.ValueOf(row), key)
}

// Cell returns the text of column c for row.
func Cell[T any](row T, c Column[T]) string {
	if c.Render != nil {
		return c.Render(row)
	}
	return Format(Value(row, c.Key))
}

// RowKey returns the rendering key of row: its RowID, else its "id"
// field, else its position.
func RowKey[T any](row T, index int) string {
	if id, ok := any(row).(Identifier); ok {
		if k := id.RowID(); k != "" {
			return k
		}
		return strconv.Itoa(index)
	}
	if k := Format(Value(row, "id")); k != Placeholder {
		return k
	}
	return strconv.Itoa(index)
}

// Format is the default stringifier. Nil, nil pointers, empty strings and
// zero times become Placeholder; zero numbers and false are shown.
func Format(v any) string {
	v = indirect(v)
	switch x := v.(type) {
	case nil:
		return Placeholder
	case string:
		if x == "" {
			return Placeholder
		}
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		if x.IsZero() {
			return Placeholder
		}
		return x.Format("2006-01-02 15:04")
	case []string:
		if len(x) == 0 {
			return Placeholder
		}
		return strings.Join(x, ", ")
	case fmt.Stringer:
		if s := x.String(); s != "" {
			return s
		}
		return Placeholder
	}
	return fmt.Sprint(v)
}

func indirect(v any) any {
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

func structField(rv reflect.Value, key string) any {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	byName := -1
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name == key {
			return rv.Field(i).Interface()
		}
		if byName < 0 && strings.EqualFold(f.Name, key) {
			byName = i
		}
	}
	if byName >= 0 {
		return rv.Field(byName).Interface()
	}
	return nil
}
