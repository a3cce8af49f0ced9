package cmap

import (
	"fmt"
	"sync"
	"testing"
)

func TestSetGet(t *testing.T) {
	m := New[int]()

	m.Set("a", 1)
	m.Set("b", 2)

	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) should report absent")
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
}

func TestGetOrSet(t *testing.T) {
	m := New[string]()

	v, loaded := m.GetOrSet("k", "first")
	if loaded || v != "first" {
		t.Errorf("GetOrSet new = %q, loaded=%v", v, loaded)
	}

	v, loaded = m.GetOrSet("k", "second")
	if !loaded || v != "first" {
		t.Errorf("GetOrSet existing = %q, loaded=%v", v, loaded)
	}
}

func TestDeleteAndClear(t *testing.T) {
	m := New[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	m.Delete("a")
	if m.Has("a") {
		t.Error("a should be deleted")
	}
	if !m.Has("b") {
		t.Error("b should remain")
	}

	m.Clear()
	if m.Count() != 0 {
		t.Errorf("Count() after Clear = %d", m.Count())
	}
}

func TestRangeStops(t *testing.T) {
	m := New[int]()
	for i := 0; i < 10; i++ {
		m.Set(fmt.Sprintf("key-%d", i), i)
	}

	seen := 0
	m.Range(func(string, int) bool {
		seen++
		return seen < 3
	})
	if seen != 3 {
		t.Errorf("Range visited %d items after early stop", seen)
	}

	if got := len(m.Keys()); got != 10 {
		t.Errorf("Keys() returned %d keys", got)
	}
}

func TestNewWithShardsFallback(t *testing.T) {
	// Non-power-of-two counts fall back to the default.
	for _, n := range []int{0, -1, 3, 17} {
		m := NewWithShards[int](n)
		if len(m.shards) != DefaultShardCount {
			t.Errorf("NewWithShards(%d) created %d shards", n, len(m.shards))
		}
	}

	m := NewWithShards[int](4)
	if len(m.shards) != 4 {
		t.Errorf("NewWithShards(4) created %d shards", len(m.shards))
	}
}

func TestConcurrentAccess(t *testing.T) {
	m := New[int]()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("g%d-i%d", g, i)
				m.Set(key, i)
				if v, ok := m.Get(key); !ok || v != i {
					t.Errorf("Get(%s) = %d, %v", key, v, ok)
				}
			}
		}(g)
	}
	wg.Wait()

	if m.Count() != 800 {
		t.Errorf("Count() = %d, want 800", m.Count())
	}
}

func BenchmarkGetOrSet(b *testing.B) {
	m := New[int]()
	keys := make([]string, 64)
	for i := range keys {
		keys[i] = fmt.Sprintf("client-%d", i)
	}

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			m.GetOrSet(keys[i%len(keys)], i)
			i++
		}
	})
}
