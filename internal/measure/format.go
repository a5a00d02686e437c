package measure

import (
	"sort"
	"strconv"

	"golang.org/x/exp/maps"
)

// Result is one rendered line item, all values in tenths.
type Result struct {
	Name string
	Min  int64
	Mean int64
	Max  int64
}

// Results returns one Result per station, ordered byte-wise by name.
func Results(data Totals) []Result {
	keys := maps.Keys(data)
	sort.Strings(keys)
	rs := make([]Result, len(keys))
	for i, k := range keys {
		s := data[k]
		rs[i] = Result{
			Name: k,
			Min:  int64(s.Min),
			Mean: s.Mean(),
			Max:  int64(s.Max),
		}
	}
	return rs
}

// Format renders the report line `{a=min/mean/max, b=...}` without a
// trailing newline.
func Format(data Totals) string {
	b := make([]byte, 0, 2+len(data)*40)
	b = append(b, '{')
	for i, r := range Results(data) {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, r.Name...)
		b = append(b, '=')
		b = FormatTenths(b, r.Min)
		b = append(b, '/')
		b = FormatTenths(b, r.Mean)
		b = append(b, '/')
		b = FormatTenths(b, r.Max)
	}
	b = append(b, '}')
	return string(b)
}

// FormatTenths appends v/10 with exactly one fractional digit.
func FormatTenths(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	dst = strconv.AppendInt(dst, v/10, 10)
	return append(dst, '.', byte('0'+v%10))
}
