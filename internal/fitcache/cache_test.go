package fitcache

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/darkroomkit/easelcalc/internal/easel"
	"github.com/darkroomkit/easelcalc/internal/metrics"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

// countingResolver wraps the real resolver and counts invocations.
func countingResolver(calls *atomic.Int64) ResolverFunc {
	r := easel.NewResolver(nil)
	return func(w, h float64, landscape bool) core.FitResult {
		calls.Add(1)
		return r.ResolveFit(w, h, landscape)
	}
}

func TestGetCachedFit_MemoizesIdenticalInputs(t *testing.T) {
	var calls atomic.Int64
	cache := New(countingResolver(&calls))

	first := cache.GetCachedFit(8, 10, false)
	second := cache.GetCachedFit(8, 10, false)

	if first != second {
		t.Errorf("Expected identical results, got %+v and %+v", first, second)
	}
	if calls.Load() != 1 {
		t.Errorf("Expected resolver to run once, ran %d times", calls.Load())
	}

	cache.GetCachedFit(8, 10, true)
	if calls.Load() != 2 {
		t.Errorf("Expected orientation to be part of the key, resolver ran %d times", calls.Load())
	}
}

func TestGetCachedFit_EvictsOldestInserted(t *testing.T) {
	var calls atomic.Int64
	cache := New(countingResolver(&calls), WithCapacity(3))

	cache.GetCachedFit(4, 5, false)
	cache.GetCachedFit(5, 7, false)
	cache.GetCachedFit(8, 10, false)
	cache.GetCachedFit(11, 14, false)

	if cache.Len() != 3 {
		t.Fatalf("Expected 3 entries, got %d", cache.Len())
	}
	if _, ok := cache.Get(Key{Width: 4, Height: 5}); ok {
		t.Error("Expected earliest key to be evicted")
	}
	for _, k := range []Key{{Width: 5, Height: 7}, {Width: 8, Height: 10}, {Width: 11, Height: 14}} {
		if _, ok := cache.Get(k); !ok {
			t.Errorf("Expected %+v to remain cached", k)
		}
	}

	before := calls.Load()
	cache.GetCachedFit(4, 5, false)
	if calls.Load() != before+1 {
		t.Error("Expected evicted key to miss on next lookup")
	}
}

func TestGetCachedFit_HitsDoNotRefreshPosition(t *testing.T) {
	var calls atomic.Int64
	cache := New(countingResolver(&calls), WithCapacity(2))

	cache.GetCachedFit(4, 5, false)
	cache.GetCachedFit(5, 7, false)
	// read the oldest entry many times; an LRU would now keep it
	for i := 0; i < 10; i++ {
		cache.GetCachedFit(4, 5, false)
	}
	cache.GetCachedFit(8, 10, false)

	if _, ok := cache.Get(Key{Width: 4, Height: 5}); ok {
		t.Error("Expected frequently read oldest entry to be evicted")
	}
	if _, ok := cache.Get(Key{Width: 5, Height: 7}); !ok {
		t.Error("Expected rarely read newer entry to survive")
	}

	want := []Key{{Width: 5, Height: 7}, {Width: 8, Height: 10}}
	got := cache.Keys()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expected keys %v, got %v", want, got)
	}
}

func TestPut_OverwriteKeepsPosition(t *testing.T) {
	cache := New(easel.NewResolver(nil), WithCapacity(2))

	a := Key{Width: 1, Height: 1}
	b := Key{Width: 2, Height: 2}
	cache.Put(a, core.FitResult{IsNonStandardPaperSize: true})
	cache.Put(b, core.FitResult{})
	cache.Put(a, core.FitResult{})
	cache.Put(Key{Width: 3, Height: 3}, core.FitResult{})

	if _, ok := cache.Get(a); ok {
		t.Error("Expected overwritten key to keep its original position and be evicted")
	}
	if _, ok := cache.Get(b); !ok {
		t.Error("Expected second key to survive")
	}
}

func TestNew_CoercesCapacity(t *testing.T) {
	cache := New(easel.NewResolver(nil), WithCapacity(0))
	if cache.Capacity() != 1 {
		t.Errorf("Expected capacity 1, got %d", cache.Capacity())
	}

	cache.GetCachedFit(8, 10, false)
	cache.GetCachedFit(11, 14, false)
	if cache.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", cache.Len())
	}
}

func TestPurge(t *testing.T) {
	cache := New(easel.NewResolver(nil))
	cache.GetCachedFit(8, 10, false)
	cache.Purge()

	if cache.Len() != 0 {
		t.Errorf("Expected empty cache after purge, got %d entries", cache.Len())
	}
	if len(cache.Keys()) != 0 {
		t.Error("Expected no keys after purge")
	}
}

func TestCacheMetrics(t *testing.T) {
	m, err := metrics.NewCacheMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCacheMetrics() failed: %v", err)
	}
	cache := New(easel.NewResolver(nil), WithCapacity(1), WithMetrics(m))

	cache.GetCachedFit(8, 10, false)
	cache.GetCachedFit(8, 10, false)
	cache.GetCachedFit(11, 14, false)

	if got := testutil.ToFloat64(m.Hits); got != 1 {
		t.Errorf("Expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.Misses); got != 2 {
		t.Errorf("Expected 2 misses, got %v", got)
	}
	if got := testutil.ToFloat64(m.Evictions); got != 1 {
		t.Errorf("Expected 1 eviction, got %v", got)
	}
	if got := testutil.ToFloat64(m.Entries); got != 1 {
		t.Errorf("Expected 1 entry, got %v", got)
	}
}

func TestGetCachedFit_NaNDimensionsAreNotStored(t *testing.T) {
	var calls atomic.Int64
	cache := New(countingResolver(&calls), WithCapacity(3))
	cache.GetCachedFit(8, 10, false)

	for i := 0; i < 50; i++ {
		cache.GetCachedFit(math.NaN(), 10, false)
		cache.GetCachedFit(8, math.NaN(), i%2 == 0)
	}

	if cache.Len() != 1 {
		t.Errorf("Expected only the finite entry to be stored, got %d entries", cache.Len())
	}
	if len(cache.Keys()) != cache.Len() {
		t.Errorf("Expected queue and map to agree, got %d keys for %d entries", len(cache.Keys()), cache.Len())
	}
	if calls.Load() != 101 {
		t.Errorf("Expected resolver to run for every NaN lookup, ran %d times", calls.Load())
	}

	cache.Put(Key{Width: math.NaN(), Height: 10}, core.FitResult{})
	if cache.Len() != 1 {
		t.Errorf("Expected Put to ignore a NaN key, got %d entries", cache.Len())
	}
}

func TestReader_LookupsDoNotResolveOrInsert(t *testing.T) {
	var calls atomic.Int64
	var r Reader = New(countingResolver(&calls), WithCapacity(2))

	if _, ok := r.Get(Key{Width: 8, Height: 10}); ok {
		t.Error("Expected a miss on an empty cache")
	}
	r.Keys()
	if r.Len() != 0 || calls.Load() != 0 {
		t.Errorf("Expected reads to leave the cache untouched, got %d entries and %d resolver calls", r.Len(), calls.Load())
	}
}

func TestCacheConcurrency(t *testing.T) {
	cache := New(easel.NewResolver(nil), WithCapacity(8))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := float64(4 + i%16)
			cache.GetCachedFit(w, w+2, i%2 == 0)
			cache.Keys()
		}(i)
	}
	wg.Wait()

	if cache.Len() > cache.Capacity() {
		t.Errorf("Expected at most %d entries, got %d", cache.Capacity(), cache.Len())
	}
	if len(cache.Keys()) != cache.Len() {
		t.Errorf("Expected queue and map to agree, got %d keys for %d entries", len(cache.Keys()), cache.Len())
	}
}
