package measure

// Totals is the global aggregation table, built once after all workers
// finished and read-only afterwards.
type Totals map[string]*Stats

// Merge combines worker tables. Its cost depends on the number of tables and
// distinct stations only, not on the number of rows.
func Merge(tables ...*Table) Totals {
	data := make(Totals)
	for _, t := range tables {
		if t == nil {
			continue
		}
		t.Each(func(name string, s *Stats) {
			if m, ok := data[name]; ok {
				m.Merge(s)
				return
			}
			c := *s
			data[name] = &c
		})
	}
	return data
}
