package datatable

import (
	"slices"

	"github.com/thenoetrevino/dressdash/internal/compare"
)

// SortRows returns a sorted copy of rows ordered by the column with key,
// using the column's Kind. Unknown keys return the rows unchanged. The sort
// is stable so equal values keep their fetch order.
func SortRows[T any](rows []T, columns []Column[T], key string, dir compare.Direction) []T {
	var col *Column[T]
	for i := range columns {
		if columns[i].Key == key {
			col = &columns[i]
			break
		}
	}
	if col == nil {
		return rows
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, compare.Func(func(row T) any {
		return Value(row, col.Key)
	}, col.Kind, dir))
	return sorted
}
