package catalog

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGetRoundTrip(t *testing.T) {
	s := New()
	value := func() string { return "csv" }

	s.Create("pkg", "loaders").Register("csv", value)

	// A second handle over the same namespace sees the same entry, and the
	// exact registered value comes back, not a copy.
	got, err := s.Create("pkg", "loaders").Get("csv")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%p", value), fmt.Sprintf("%p", got))
}

func TestRegisterOverwritesSilently(t *testing.T) {
	s := New()
	h := s.Create("pkg", "loaders")

	h.Register("csv", "first")
	h.Register("csv", "second")

	got, err := h.Get("csv")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestGetAllReturnsDirectChildrenOnly(t *testing.T) {
	s := New()
	s.Create("a", "b").Register("x", 1)
	s.Create("a", "b", "c").Register("y", 2)

	entries := s.Create("a", "b").GetAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].Name)
	assert.Equal(t, 1, entries[0].Value)
}

func TestGetAllPreservesRegistrationOrder(t *testing.T) {
	s := New()
	h := s.Create("pkg")
	names := []string{"zeta", "alpha", "mid", "beta"}
	for i, name := range names {
		h.Register(name, i)
	}

	// Overwriting keeps the entry's original position.
	h.Register("alpha", 99)

	entries := h.GetAll()
	require.Len(t, entries, len(names))
	for i, e := range entries {
		assert.Equal(t, names[i], e.Name)
	}
	assert.Equal(t, 99, entries[1].Value)
}

func TestGetAllEmptyNamespace(t *testing.T) {
	s := New()
	assert.Empty(t, s.Create("never", "touched").GetAll())
}

func TestIndependentNamespaces(t *testing.T) {
	s := New()
	s.Create("a").Register("x", 1)

	assert.Empty(t, s.Create("b").GetAll())
	assert.False(t, s.CheckExists("b"))

	_, err := s.Create("b").Get("x")
	require.Error(t, err)
}

func TestCheckExistsSubtreeSemantics(t *testing.T) {
	s := New()
	s.Create("a", "b").Register("x", 1)

	assert.True(t, s.CheckExists("a"))
	assert.True(t, s.CheckExists("a", "b"))
	assert.True(t, s.CheckExists("a", "b", "x"))
	assert.False(t, s.CheckExists("a", "b", "y"))
	assert.False(t, s.CheckExists("c"))
}

func TestCheckExistsEmptyStore(t *testing.T) {
	s := New()
	assert.False(t, s.CheckExists("a"))
	// The empty prefix matches every key, so it exists exactly when the
	// store holds anything at all.
	assert.True(t, s.CheckExists())

	s.Create("a").Register("x", 1)
	assert.True(t, s.CheckExists())
}

func TestGetMissingCarriesPathAndAvailableNames(t *testing.T) {
	s := New()
	h := s.Create("a")
	h.Register("csv", 1)
	h.Register("json", 2)

	_, err := h.Get("missing")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "a.missing", notFound.Path)
	assert.Equal(t, []string{"csv", "json"}, notFound.Available)
	assert.Contains(t, err.Error(), `"a.missing"`)
	assert.Contains(t, err.Error(), "csv, json")
}

func TestGetMissingFromEmptyNamespace(t *testing.T) {
	s := New()

	_, err := s.Create("a").Get("missing")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "a.missing", notFound.Path)
	assert.Empty(t, notFound.Available)
}

func TestEmptySegmentsArePermitted(t *testing.T) {
	s := New()

	// Empty strings are ordinary segments: discouraged but total.
	s.Create("").Register("", 42)

	got, err := s.Create("").Get("")
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.True(t, s.CheckExists(""))
	assert.False(t, s.CheckExists("", "x"))

	// An empty namespace binds a handle to the root.
	s.Create().Register("top", 7)
	got, err = s.Create().Get("top")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestResetClearsEverything(t *testing.T) {
	s := New()
	s.Create("a").Register("x", 1)
	require.True(t, s.CheckExists("a"))

	s.Reset()

	assert.False(t, s.CheckExists("a"))
	assert.Empty(t, s.Create("a").GetAll())

	// The store stays usable after a reset.
	s.Create("a").Register("x", 2)
	got, err := s.Create("a").Get("x")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

// TestStore_ConcurrentAccess verifies that interleaved registrations and
// lookups do not race or lose writes. Each goroutine works on its own key,
// matching the single-operation atomicity the store promises.
func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	const numGoroutines = 100
	var wg sync.WaitGroup

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			s.Create("concurrent").Register(fmt.Sprintf("entry-%d", i), i)
		}(i)
	}
	wg.Wait()

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			got, err := s.Create("concurrent").Get(fmt.Sprintf("entry-%d", i))
			if err != nil {
				t.Errorf("Get(entry-%d): %v", i, err)
				return
			}
			if got != i {
				t.Errorf("Get(entry-%d) = %v, want %d", i, got, i)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Create("concurrent").GetAll(), numGoroutines)
}

func TestNotFoundErrorIsMatchable(t *testing.T) {
	s := New()
	_, err := s.Create("ns").Get("nope")

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
