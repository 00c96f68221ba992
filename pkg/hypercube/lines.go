package hypercube

import (
	"fmt"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// Immutable set of winning lines for one board shape, each line is a mask
// with exactly width bits set. Safe to share between boards and goroutines,
// as long as nobody writes to the masks.
type LineSet struct {
	shape Shape
	masks []*bitset.BitSet
}

// Build every winning line of the shape.
//
// A line is described by its active axes (the ones that vary), the direction
// of every active axis relative to the primary one (the lowest active axis)
// and the fixed coordinates of the remaining axes. For each non-empty subset
// of axes, each assignment of the fixed axes and each subset of 'forward'
// secondary axes, the primary axis walks [0, width), forward axes follow it
// and reverse axes walk width-1-i. Fixing the primary's direction is what
// keeps every line from being produced twice.
//
// With width == 1 all of these collapse onto the only cell, so the set holds
// that single line. Shapes not built by NewShape are rejected with
// ErrInvalidConfiguration.
func EnumerateLines(shape Shape) (*LineSet, error) {
	n, d := shape.width, shape.dimensions
	if n < 1 || d < 1 || shape.cells < 1 {
		return nil, fmt.Errorf("%w: empty shape %v, use NewShape", ErrInvalidConfiguration, shape)
	}
	ls := &LineSet{shape: shape}

	if n == 1 {
		ls.masks = []*bitset.BitSet{bitset.New(1).Set(0)}
		return ls, nil
	}

	count, _ := lineCount(n, d, maxInt)
	ls.masks = make([]*bitset.BitSet, 0, count)

	// strides[axis] = n^axis, the weight of the axis in the linear index
	strides := make([]int, d)
	strides[0] = 1
	for axis := 1; axis < d; axis++ {
		strides[axis] = strides[axis-1] * n
	}

	active := make([]int, 0, d)
	fixed := make([]int, 0, d)

	for subset := uint64(1); subset < 1<<d; subset++ {
		active, fixed = active[:0], fixed[:0]
		for axis := range d {
			if subset&(1<<axis) != 0 {
				active = append(active, axis)
			} else {
				fixed = append(fixed, axis)
			}
		}

		primary := active[0]
		secondary := active[1:]
		nFixed := 1
		for range fixed {
			nFixed *= n
		}

		for v := range nFixed {
			// Mixed radix decomposition of 'v' into the fixed coordinates
			base := 0
			for i, rest := 0, v; i < len(fixed); i++ {
				base += (rest % n) * strides[fixed[i]]
				rest /= n
			}

			for forward := uint64(0); forward < 1<<len(secondary); forward++ {
				mask := bitset.New(uint(shape.cells))
				for i := range n {
					index := base + i*strides[primary]
					for j, axis := range secondary {
						if forward&(1<<j) != 0 {
							index += i * strides[axis]
						} else {
							index += (n - 1 - i) * strides[axis]
						}
					}
					mask.Set(uint(index))
				}
				ls.masks = append(ls.masks, mask)
			}
		}
	}

	return ls, nil
}

func (ls *LineSet) Shape() Shape {
	return ls.shape
}

// Number of lines
func (ls *LineSet) Len() int {
	return len(ls.masks)
}

// Get a copy of the i-th line mask
func (ls *LineSet) Mask(i int) *bitset.BitSet {
	return ls.masks[i].Clone()
}

// Positions of the cells on the i-th line, in increasing linear index order
func (ls *LineSet) Positions(i int) []Position {
	positions := make([]Position, 0, ls.shape.width)
	mask := ls.masks[i]
	for idx, ok := mask.NextSet(0); ok; idx, ok = mask.NextSet(idx + 1) {
		positions = append(positions, ls.shape.Decode(int(idx)))
	}
	return positions
}

// Index of the first line fully contained in the given mask
func (ls *LineSet) Completed(cells *bitset.BitSet) (int, bool) {
	// Fewer than width cells can't complete any line
	if cells.Count() < uint(ls.shape.width) {
		return -1, false
	}

	for i, mask := range ls.masks {
		if cells.IsSuperSet(mask) {
			return i, true
		}
	}
	return -1, false
}

// Number of active axes of the i-th line, 1 for rows, 2 for planar diagonals, etc.
func (ls *LineSet) Order(i int) int {
	positions := ls.Positions(i)
	if len(positions) < 2 {
		return len(positions)
	}
	varying := uint64(0)
	for axis := range ls.shape.dimensions {
		if positions[0][axis] != positions[1][axis] {
			varying |= 1 << axis
		}
	}
	return bits.OnesCount64(varying)
}
