package builder

import (
	"fmt"
	"strconv"
)

// IDFn turns a zero-based index into a node label. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet-style names: 0→"A", 25→"Z", 26→"AA".
// It counts in bijective base 26, so there is no zero digit. Panics if
// idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: column index must be non-negative, got %d", idx))
	}
	// 14 letters cover every non-negative int.
	var name [14]byte
	pos := len(name)
	for n := uint64(idx) + 1; n > 0; n = (n - 1) / 26 {
		pos--
		name[pos] = 'A' + byte((n-1)%26)
	}

	return string(name[pos:])
}

// PrefixIDFn returns prefix + decimal index, e.g. "city0", "city1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
