package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestLRUGetPut(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v); want (1, true)", v, ok)
	}

	// "b" is now the least recently used entry.
	c.Put("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) should miss after eviction")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2", c.Len())
	}

	s := c.Stats()
	if s.Evicts != 1 || s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats() = %+v; want 1 evict, 1 hit, 1 miss", s)
	}
	if s.HitRate() != 0.5 {
		t.Errorf("HitRate() = %v; want 0.5", s.HitRate())
	}
}

func TestLRUPutUpdates(t *testing.T) {
	c := New[string, int](0)
	c.Put("a", 1)
	c.Put("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d; want 2", v)
	}
	if c.Stats().Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d; want %d", c.Stats().Capacity, DefaultCapacity)
	}
}

func TestLRUGetOrCompute(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrCompute("k", compute)
		if err != nil || v != 42 {
			t.Fatalf("GetOrCompute() = (%d, %v); want (42, nil)", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times; want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrCompute("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrCompute() error = %v; want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computations must not be cached")
	}
}

func TestLRUPurge(t *testing.T) {
	c := New[int, int](4)
	c.Put(1, 1)
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d; want 0", c.Len())
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = c.GetOrCompute(i%32, func() (int, error) { return i, nil })
				c.Put(g, i)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d; exceeds capacity", c.Len())
	}
}
