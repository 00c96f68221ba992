package hypercube

import (
	"errors"
	"sync"
	"testing"
)

func TestLineCacheSharesLines(t *testing.T) {
	cache := NewLineCache(nil)

	first, err := cache.Lines(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.Lines(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("Expected the same line set for the same shape")
	}

	b, err := cache.NewBoard(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b.Lines() != first {
		t.Error("Board should use the cached line set")
	}

	if _, err := cache.Lines(4, 2); err != nil {
		t.Fatal(err)
	}
	if cache.Len() != 2 {
		t.Errorf("Expected 2 cached shapes, got %d", cache.Len())
	}
}

func TestLineCacheRejectsInvalidShapes(t *testing.T) {
	cache := NewLineCache(DefaultLimits().SetMaxCells(100))

	if _, err := cache.NewBoard(11, 2); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
	if _, err := cache.Lines(0, 1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
	if cache.Len() != 0 {
		t.Errorf("Invalid shapes must not be cached, got %d entries", cache.Len())
	}
}

func TestLineCacheConcurrentAccess(t *testing.T) {
	cache := NewLineCache(nil)
	sets := make([]*LineSet, 16)

	var wg sync.WaitGroup
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ls, err := cache.Lines(4, 3)
			if err != nil {
				t.Error(err)
				return
			}
			sets[i] = ls
		}(i)
	}
	wg.Wait()

	for i := range sets {
		if sets[i] != sets[0] {
			t.Fatalf("Goroutine %d got a different line set", i)
		}
	}
}
