package hypercube

import "sync"

// Memoized line sets, one per shape. Create one and pass it to whoever builds
// boards; it is safe for concurrent use.
type LineCache struct {
	mu     sync.Mutex
	limits *Limits
	sets   map[Shape]*LineSet
}

func NewLineCache(limits *Limits) *LineCache {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &LineCache{
		limits: limits,
		sets:   make(map[Shape]*LineSet),
	}
}

// Get the lines of the (width, dimensions) board, enumerating them on first use
func (c *LineCache) Lines(width, dimensions int) (*LineSet, error) {
	shape, err := NewShapeWithLimits(width, dimensions, c.limits)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ls, ok := c.sets[shape]; ok {
		return ls, nil
	}
	ls, err := EnumerateLines(shape)
	if err != nil {
		return nil, err
	}
	c.sets[shape] = ls
	return ls, nil
}

// Create an empty board sharing the cached lines
func (c *LineCache) NewBoard(width, dimensions int, opts ...Option) (*Board, error) {
	ls, err := c.Lines(width, dimensions)
	if err != nil {
		return nil, err
	}
	return NewBoardFromLines(ls, opts...)
}

// Number of cached shapes
func (c *LineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sets)
}
