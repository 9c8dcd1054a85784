package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	store := New[string, int]()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.False(t, store.Has("missing"))

	store.Set("a", 1)

	v, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, store.Has("a"))
	assert.Equal(t, 1, store.Len())
}

func TestStoreSetOverwrites(t *testing.T) {
	store := New[string, string]()

	store.Set("k", "first")
	store.Set("k", "second")

	v, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, store.Len())
}

func TestStoreSetMany(t *testing.T) {
	store := New[string, int]()
	store.Set("a", 1)

	// SetMany merge eder, mevcut key'leri ezer.
	store.SetMany(map[string]int{
		"a": 10,
		"b": 2,
		"c": 3,
	})

	assert.Equal(t, 3, store.Len())
	v, _ := store.Get("a")
	assert.Equal(t, 10, v)
	v, _ = store.Get("c")
	assert.Equal(t, 3, v)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := New[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.Set(i, i*2)
		}(i)
		go func(i int) {
			defer wg.Done()
			store.Get(i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	for i := 0; i < 50; i++ {
		v, ok := store.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*2, v)
	}
}
