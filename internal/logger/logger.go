// Package logger sets up logrus for the command line tools. Messages go to
// stderr, stdout is reserved for the report.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const TimestampFormat = "2006-01-02 15:04:05.000"

// Formatter renders `<time> [LEVEL] [component] message k=v ...` with fields
// sorted by key.
type Formatter struct {
	TimestampFormat  string
	DisableTimestamp bool
	Component        string
}

func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	if !f.DisableTimestamp {
		layout := f.TimestampFormat
		if layout == "" {
			layout = TimestampFormat
		}
		b.WriteString(entry.Time.Format(layout))
		b.WriteByte(' ')
	}
	b.WriteString("[" + strings.ToUpper(entry.Level.String()) + "] ")
	if f.Component != "" {
		b.WriteString("[" + f.Component + "] ")
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		writeValue(b, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func writeValue(b *bytes.Buffer, v interface{}) {
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case error:
		s = v.Error()
	default:
		s = fmt.Sprint(v)
	}
	if needsQuoting(s) {
		fmt.Fprintf(b, "%q", s)
		return
	}
	b.WriteString(s)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			c == '-' || c == '.' || c == '_' || c == '/' || c == ':') {
			return true
		}
	}
	return false
}

// Setup points the standard logger at w with the given level, e.g. "info".
func Setup(w io.Writer, level, component string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "failed to parse log-level")
	}
	log.SetOutput(w)
	log.SetFormatter(&Formatter{Component: component})
	log.SetLevel(lvl)
	return nil
}
