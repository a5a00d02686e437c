package measure

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTable(t *testing.T) {
	Convey("given an empty table", t, func() {
		tab := newTableSlots(4)
		So(tab.Len(), ShouldEqual, 0)
		_, ok := tab.Get("Hamburg")
		So(ok, ShouldBeFalse)

		Convey("when a station is added once", func() {
			tab.Add([]byte("Hamburg"), 120)
			s, ok := tab.Get("Hamburg")
			So(ok, ShouldBeTrue)
			So(s, ShouldResemble, Stats{Min: 120, Max: 120, Sum: 120, Count: 1})
			So(tab.Len(), ShouldEqual, 1)

			Convey("later values update the same entry", func() {
				tab.Add([]byte("Hamburg"), 100)
				tab.Add([]byte("Hamburg"), -5)
				s, _ := tab.Get("Hamburg")
				So(s, ShouldResemble, Stats{Min: -5, Max: 120, Sum: 215, Count: 3})
				So(tab.Len(), ShouldEqual, 1)
			})
		})

		Convey("when names differ only in case or bytes", func() {
			tab.Add([]byte("abc"), 1)
			tab.Add([]byte("ABC"), 2)
			tab.Add([]byte("abc "), 3)
			So(tab.Len(), ShouldEqual, 3)
			s, _ := tab.Get("ABC")
			So(s.Sum, ShouldEqual, 2)
		})

		Convey("when more stations are added than fit", func() {
			for i := 0; i < 1000; i++ {
				tab.Add([]byte(fmt.Sprintf("station-%d", i)), i%999)
			}
			for i := 0; i < 1000; i++ {
				tab.Add([]byte(fmt.Sprintf("station-%d", i)), -(i % 999))
			}
			So(tab.Len(), ShouldEqual, 1000)
			So(len(tab.slots), ShouldBeGreaterThanOrEqualTo, 2000)
			var seen int
			tab.Each(func(name string, s *Stats) {
				seen++
				So(s.Count, ShouldEqual, 2)
				So(s.Sum, ShouldEqual, 0)
				So(s.Min, ShouldEqual, -s.Max)
			})
			So(seen, ShouldEqual, 1000)
		})
	})

	Convey("table sizes must be powers of two", t, func() {
		So(func() { newTableSlots(3) }, ShouldPanic)
		So(func() { newTableSlots(0) }, ShouldPanic)
	})
}

func TestTableAddDoesNotAllocateForKnownStations(t *testing.T) {
	tab := NewTable()
	name := []byte("Ouarzazate")
	tab.Add(name, 191)
	allocs := testing.AllocsPerRun(100, func() {
		tab.Add(name, 12)
	})
	if allocs != 0 {
		t.Fatalf("got %v allocations per run, want 0", allocs)
	}
}

func BenchmarkTableAdd(b *testing.B) {
	names := make([][]byte, 413)
	for i := range names {
		names[i] = []byte(fmt.Sprintf("Station %03d", i))
	}
	tab := NewTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tab.Add(names[i%len(names)], i%1999-999)
	}
}
