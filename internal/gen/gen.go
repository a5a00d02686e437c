// Package gen writes synthetic measurement files.
//
// data:
//
// Tamale;27.5
// Bergen;9.6
// Lodwar;37.1
// Whitehorse;-3.8
// Ouarzazate;19.1
package gen

import (
	"bufio"
	"io"
	"math"
	"math/rand"

	"github.com/miku/1brc/internal/measure"
	"github.com/pkg/errors"
)

// Station is a weather station with its long term mean temperature.
type Station struct {
	Name string
	Mean float64
}

// Stations is the default pool records are drawn from.
var Stations = []Station{
	{"Abha", 18.0}, {"Abidjan", 26.0}, {"Accra", 26.4}, {"Addis Ababa", 16.0},
	{"Adelaide", 17.3}, {"Alexandria", 20.0}, {"Anchorage", 2.8}, {"Ankara", 12.0},
	{"Antananarivo", 17.9}, {"Bangkok", 28.6}, {"Barcelona", 18.2}, {"Bergen", 7.7},
	{"Bulawayo", 18.9}, {"Cairo", 21.4}, {"Dallol", 34.6}, {"Dikson", -11.1},
	{"Dodoma", 22.7}, {"Dubai", 26.9}, {"Hamburg", 9.7}, {"Helsinki", 5.9},
	{"Hong Kong", 23.3}, {"Istanbul", 13.9}, {"Jakarta", 26.7}, {"Kampala", 20.0},
	{"Lodwar", 29.3}, {"Moscow", 5.8}, {"Nuuk", -1.4}, {"Ouarzazate", 18.9},
	{"Palembang", 27.3}, {"Petropavlovsk-Kamchatsky", 1.9}, {"Reykjavík", 4.3},
	{"Saint Petersburg", 5.8}, {"São Paulo", 19.7}, {"Tamale", 27.9}, {"Tokyo", 15.4},
	{"Toronto", 9.4}, {"Ürümqi", 7.4}, {"Vladivostok", 4.9}, {"Whitehorse", -0.1},
	{"Yakutsk", -8.8}, {"Zürich", 9.3},
}

// Generator draws records from a station pool. It is not safe for
// concurrent use.
type Generator struct {
	rnd      *rand.Rand
	stations []Station
}

// New returns a Generator seeded with seed. A nil pool uses Stations.
func New(seed int64, stations []Station) *Generator {
	if len(stations) == 0 {
		stations = Stations
	}
	return &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		stations: stations,
	}
}

// Next returns a random station and a temperature in tenths within
// [-999, 999].
func (g *Generator) Next() (string, int64) {
	s := g.stations[g.rnd.Intn(len(g.stations))]
	v := math.Round((s.Mean + g.rnd.NormFloat64()*10) * 10)
	v = math.Max(-999, math.Min(999, v))
	return s.Name, int64(v)
}

// Write writes rows records to w, one per line.
func (g *Generator) Write(w io.Writer, rows int) error {
	var (
		bw  = bufio.NewWriter(w)
		buf []byte
	)
	for i := 0; i < rows; i++ {
		name, v := g.Next()
		buf = append(buf[:0], name...)
		buf = append(buf, ';')
		buf = measure.FormatTenths(buf, v)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "write record %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}
