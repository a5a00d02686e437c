package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestFormat(t *testing.T) {
	var cases = []struct {
		about string
		f     *Formatter
		entry *log.Entry
		want  string
	}{
		{
			about: "message only",
			f:     &Formatter{DisableTimestamp: true},
			entry: &log.Entry{Level: log.InfoLevel, Message: "done"},
			want:  "[INFO] done\n",
		},
		{
			about: "sorted fields and component",
			f:     &Formatter{DisableTimestamp: true, Component: "1brc"},
			entry: &log.Entry{
				Level:   log.DebugLevel,
				Message: "shard done",
				Data:    log.Fields{"shard": 2, "rows": uint64(10), "err": errors.New("a b")},
			},
			want: "[DEBUG] [1brc] shard done err=\"a b\" rows=10 shard=2\n",
		},
		{
			about: "timestamp",
			f:     &Formatter{},
			entry: &log.Entry{
				Level:   log.WarnLevel,
				Time:    time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC),
				Message: "slow",
				Data:    log.Fields{"path": "data/measurements.txt", "empty": ""},
			},
			want: "2024-01-02 03:04:05.006 [WARNING] slow empty=\"\" path=data/measurements.txt\n",
		},
	}
	for _, c := range cases {
		b, err := c.f.Format(c.entry)
		if err != nil {
			t.Fatalf("%s: %v", c.about, err)
		}
		if string(b) != c.want {
			t.Errorf("%s: got %q, want %q", c.about, b, c.want)
		}
	}
}

func TestSetup(t *testing.T) {
	defer log.SetOutput(log.StandardLogger().Out)
	var buf bytes.Buffer
	if err := Setup(&buf, "bogus", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := Setup(&buf, "warn", "test"); err != nil {
		t.Fatal(err)
	}
	defer log.SetLevel(log.InfoLevel)
	log.Info("hidden")
	log.Warn("shown")
	if got := buf.String(); !strings.Contains(got, "[WARNING] [test] shown") || strings.Contains(got, "hidden") {
		t.Fatalf("unexpected output %q", got)
	}
}
