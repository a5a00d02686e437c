package measure

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Source is a random access view of the input, e.g. an *mmap.ReaderAt.
type Source interface {
	io.ReaderAt
	Len() int
}

// Shard is the byte range [Start, End) of the input handled by one worker.
type Shard struct {
	Start int64
	End   int64
}

func (s Shard) Len() int64 { return s.End - s.Start }

// Chunk splits src into at most n disjoint shards of roughly equal size. All
// cuts are moved forward to the start of the next line, the last shard ends
// at the end of the input. Shards that end up empty are dropped, an empty
// input yields no shards.
func Chunk(src Source, n int) ([]Shard, error) {
	size := int64(src.Len())
	if size == 0 {
		return nil, nil
	}
	if n < 1 {
		n = 1
	}
	var (
		shards = make([]Shard, 0, n)
		start  int64
	)
	for i := 1; i < n && start < size; i++ {
		cut := size * int64(i) / int64(n)
		if cut <= start {
			continue
		}
		cut, err := nextLineStart(src, cut, size)
		if err != nil {
			return nil, err
		}
		if cut > start {
			shards = append(shards, Shard{Start: start, End: cut})
			start = cut
		}
	}
	if start < size {
		shards = append(shards, Shard{Start: start, End: size})
	}
	return shards, nil
}

// nextLineStart returns pos if a line starts there, otherwise the offset
// right after the next newline, or size if there is none.
func nextLineStart(src io.ReaderAt, pos, size int64) (int64, error) {
	var buf [128]byte
	if _, err := src.ReadAt(buf[:1], pos-1); err != nil {
		return 0, errors.Wrapf(err, "read at offset %d", pos-1)
	}
	if buf[0] == newline {
		return pos, nil
	}
	for pos < size {
		n, err := src.ReadAt(buf[:], pos)
		if i := bytes.IndexByte(buf[:n], newline); i >= 0 {
			return pos + int64(i) + 1, nil
		}
		pos += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, errors.Wrapf(err, "read at offset %d", pos)
		}
	}
	return size, nil
}
