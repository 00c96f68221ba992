package hypercube

import (
	"encoding/json"
	"strings"
)

// Upper bounds on the size of a board, the line set grows as ((n+2)^d - n^d)/2
// masks of n^d bits each, so even modest (n, d) pairs can exhaust memory
type Limits struct {
	MaxCells int
	MaxLines int
	ByteSize int64
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const maxInt = int(^uint(0) >> 1)

const (
	DefaultCellsLimit    int   = 1 << 24
	DefaultLinesLimit    int   = 1 << 22
	DefaultByteSizeLimit int64 = 256 << 20
)

func DefaultLimits() *Limits {
	return &Limits{
		MaxCells: DefaultCellsLimit,
		MaxLines: DefaultLinesLimit,
		ByteSize: DefaultByteSizeLimit,
	}
}

// Set the maximum number of cells (n^d) of a board
func (l *Limits) SetMaxCells(cells int) *Limits {
	l.MaxCells = max(cells, 1)
	return l
}

// Set the maximum number of winning lines
func (l *Limits) SetMaxLines(lines int) *Limits {
	l.MaxLines = max(lines, 1)
	return l
}

// Set the maximum memory the line set may take
func (l *Limits) SetMbSize(mbsize int) *Limits {
	return l.SetByteSize(int64(mbsize) * (1 << 20))
}

func (l *Limits) SetByteSize(bytesize int64) *Limits {
	l.ByteSize = bytesize
	return l
}

// -1 disables the memory check
func (l *Limits) InfiniteSize() bool {
	return l.ByteSize == -1
}

// Compute base^exp, reports false if the result would exceed ceiling
func checkedPow(base, exp, ceiling int) (int, bool) {
	result := 1
	for range exp {
		if base != 0 && result > ceiling/base {
			return 0, false
		}
		result *= base
	}
	return result, result <= ceiling
}

// Number of lines EnumerateLines produces for (width, dimensions),
// ((n+2)^d - n^d)/2 for n >= 2 and a single line for n == 1 or d == 1.
// Reports false if the count would exceed ceiling.
func lineCount(width, dimensions, ceiling int) (int, bool) {
	if width == 1 || dimensions == 1 {
		return 1, ceiling >= 1
	}

	ceiling = min(ceiling, maxInt/4)
	inner, ok := checkedPow(width, dimensions, maxInt/4)
	if !ok {
		return 0, false
	}
	outer, ok := checkedPow(width+2, dimensions, 2*ceiling+inner)
	if !ok {
		return 0, false
	}
	return (outer - inner) / 2, true
}

// ExpectedLineCount returns ((n+2)^d - n^d)/2 for n >= 2 and 1 for n == 1,
// -1 if the value does not fit in an int
func ExpectedLineCount(width, dimensions int) int {
	if width < 1 || dimensions < 1 {
		return 0
	}
	count, ok := lineCount(width, dimensions, maxInt)
	if !ok {
		return -1
	}
	return count
}
