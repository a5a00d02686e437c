package measure

import "bytes"

const (
	delimiter = ';'
	newline   = '\n'

	// longest temperature field is "-99.9"
	maxTempLen = 5
)

// ParseLine splits a single record (terminator excluded) into the station
// name and the temperature in tenths of a degree. The returned name aliases
// line. Errors are one of a fixed set of values matching ErrMalformedRecord.
func ParseLine(line []byte) (name []byte, temp int, err error) {
	sep := -1
	for i := len(line) - 1; i >= 0 && i >= len(line)-maxTempLen-1; i-- {
		if line[i] == delimiter {
			sep = i
			break
		}
	}
	if sep < 0 {
		if bytes.IndexByte(line, delimiter) >= 0 {
			// the temperature field is too long to be valid
			return nil, 0, errBadTemperature
		}
		return nil, 0, errNoDelimiter
	}
	name = line[:sep]
	if len(name) == 0 {
		return nil, 0, errEmptyName
	}
	if bytes.IndexByte(name, delimiter) >= 0 {
		return nil, 0, errDelimiterInName
	}
	temp, err = parseTemp(line[sep+1:])
	if err != nil {
		return nil, 0, err
	}
	return name, temp, nil
}

// parseTemp accepts -?[0-9]{1,2}\.[0-9] and returns the value times ten.
func parseTemp(b []byte) (int, error) {
	var (
		neg bool
		i   int
	)
	if len(b) > 0 && b[0] == '-' {
		neg = true
		i = 1
	}
	whole := len(b) - i - 2
	if whole < 1 || whole > 2 || b[len(b)-2] != '.' {
		return 0, errBadTemperature
	}
	v := 0
	for ; i < len(b)-2; i++ {
		d := b[i] - '0'
		if d > 9 {
			return 0, errBadTemperature
		}
		v = v*10 + int(d)
	}
	d := b[len(b)-1] - '0'
	if d > 9 {
		return 0, errBadTemperature
	}
	v = v*10 + int(d)
	if neg {
		v = -v
	}
	return v, nil
}
