package compare

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	ten := 10
	tests := []struct {
		name string
		a, b any
		kind Kind
		dir  Direction
		want int
	}{
		{"numbers asc", 2, 10, Auto, Asc, -1},
		{"numbers desc", 2, 10, Auto, Desc, 1},
		{"numeric strings are numbers", "9", "10", Auto, Asc, -1},
		{"mixed int and float", 2.5, 2, Auto, Asc, 1},
		{"pointer is dereferenced", &ten, 3, Auto, Asc, 1},
		{"bools false first", false, true, Auto, Asc, -1},
		{"dates chronological", "2024-03-01", "2023-12-31", Auto, Asc, 1},
		{"rfc3339 dates", "2024-01-01T10:00:00Z", "2024-01-01T09:00:00Z", Auto, Asc, 1},
		{"strings ignore case", "apple", "Banana", Auto, Asc, -1},
		{"equal strings", "Ann", "ann", Auto, Asc, 0},
		{"nil first ascending", nil, 1, Auto, Asc, -1},
		{"nil last descending", nil, 1, Auto, Desc, 1},
		{"both nil", nil, (*int)(nil), Auto, Asc, 0},
		{"string kind does not parse numbers", "9", "10", String, Asc, 1},
		{"number kind falls back to string", "abc", "abd", Number, Asc, -1},
		{"number kind puts numbers before text", "1a", "10", Number, Asc, 1},
		{"auto puts numbers before dates", 5, "2024-01-01", Auto, Asc, -1},
		{"auto puts dates before text", "2024-01-01", "abc", Auto, Asc, -1},
		{"auto puts bools between numbers and dates", true, "2024-01-01", Auto, Asc, -1},
		{"date kind", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Date, Asc, 1},
		{"bool kind", true, false, Bool, Desc, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Values(tt.a, tt.b, tt.kind, tt.dir)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestFunc_SortsStable(t *testing.T) {
	type row struct {
		name  string
		price any
	}
	rows := []row{
		{"c", 30},
		{"a", "5"},
		{"b", nil},
		{"d", 30},
	}

	slices.SortStableFunc(rows, Func(func(r row) any { return r.price }, Number, Asc))

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.name
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, names)
}

func TestFunc_MixedValuesIgnoreInputOrder(t *testing.T) {
	sorted := func(kind Kind, in ...any) []any {
		out := slices.Clone(in)
		slices.SortStableFunc(out, Func(func(v any) any { return v }, kind, Asc))
		return out
	}

	for _, kind := range []Kind{Auto, Number} {
		assert.Equal(t, sorted(kind, "1a", "10", "2"), sorted(kind, "2", "10", "1a"), kind.String())
		assert.Equal(t, []any{"2", "10", "1a"}, sorted(kind, "1a", "10", "2"), kind.String())
	}

	mixed := []any{"zeta", "2024-05-01", 7, "2023-01-01", "3", "alpha"}
	want := []any{"3", 7, "2023-01-01", "2024-05-01", "alpha", "zeta"}
	assert.Equal(t, want, sorted(Auto, mixed...))
	reversed := slices.Clone(mixed)
	slices.Reverse(reversed)
	assert.Equal(t, want, sorted(Auto, reversed...))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Desc, Asc.Toggle())
	assert.Equal(t, Asc, Desc.Toggle())

	d, err := ParseDirection(" DESC ")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "date", Date.String())
}
