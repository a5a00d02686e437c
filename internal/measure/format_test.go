package measure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatTenths(t *testing.T) {
	var cases = []struct {
		v    int64
		want string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{-5, "-0.5"},
		{10, "1.0"},
		{-38, "-3.8"},
		{999, "99.9"},
		{-999, "-99.9"},
		{12345, "1234.5"},
	}
	for _, c := range cases {
		if got := string(FormatTenths(nil, c.v)); got != c.want {
			t.Errorf("FormatTenths(%d) got %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	var cases = []struct {
		about string
		data  Totals
		want  string
	}{
		{
			about: "empty",
			data:  Totals{},
			want:  "{}",
		},
		{
			about: "single",
			data:  Totals{"Bulawayo": {Min: 89, Max: 89, Sum: 89, Count: 1}},
			want:  "{Bulawayo=8.9/8.9/8.9}",
		},
		{
			about: "byte order, not locale order",
			data: Totals{
				"b":     {Min: 10, Max: 10, Sum: 10, Count: 1},
				"B":     {Min: -10, Max: -10, Sum: -10, Count: 1},
				"a":     {Min: 0, Max: 0, Sum: 0, Count: 1},
				"Ärhus": {Min: 1, Max: 1, Sum: 1, Count: 1},
			},
			want: "{B=-1.0/-1.0/-1.0, a=0.0/0.0/0.0, b=1.0/1.0/1.0, Ärhus=0.1/0.1/0.1}",
		},
		{
			about: "mean close to zero renders without sign",
			data:  Totals{"x": {Min: -1, Max: 0, Sum: -1, Count: 3}},
			want:  "{x=-0.1/0.0/0.0}",
		},
	}
	for _, c := range cases {
		if got := Format(c.data); got != c.want {
			t.Errorf("%s: got %s, want %s", c.about, got, c.want)
		}
	}
}

func TestResults(t *testing.T) {
	data := Totals{
		"Hamburg":   {Min: 100, Max: 120, Sum: 220, Count: 2},
		"Palembang": {Min: 388, Max: 388, Sum: 388, Count: 1},
	}
	want := []Result{
		{Name: "Hamburg", Min: 100, Mean: 110, Max: 120},
		{Name: "Palembang", Min: 388, Mean: 388, Max: 388},
	}
	if diff := cmp.Diff(want, Results(data)); diff != "" {
		t.Fatalf("Results mismatch (-want +got):\n%s", diff)
	}
}
