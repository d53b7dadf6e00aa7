package stringmap

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/hupe1980/containers"
	"github.com/hupe1980/containers/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkKeyValue(t *testing.T, m *Map[uint32], key string, value uint32) {
	t.Helper()

	require.True(t, m.ContainsKey(key))
	assert.Equal(t, value, m.At(key))

	*m.GetPtr(key) = value + 1
	assert.Equal(t, value+1, m.At(key))
	*m.GetPtr(key) = value
	assert.Equal(t, value, m.At(key))
}

func TestMap(t *testing.T) {
	var m Map[uint32]

	m.Insert("test", 10)
	checkKeyValue(t, &m, "test", 10)

	m.Insert("test2", 20)
	checkKeyValue(t, &m, "test", 10)
	checkKeyValue(t, &m, "test2", 20)

	m.Insert("atest", 30)
	checkKeyValue(t, &m, "test", 10)
	checkKeyValue(t, &m, "test2", 20)
	checkKeyValue(t, &m, "atest", 30)

	prev, replaced := m.Insert("test", 5)
	assert.True(t, replaced)
	assert.Equal(t, uint32(10), prev)
	checkKeyValue(t, &m, "test", 5)

	m.Insert("btest", 100)
	checkKeyValue(t, &m, "btest", 100)

	for _, missing := range []string{"prout", "tes", "tesp", "test "} {
		_, ok := m.Get(missing)
		assert.False(t, ok, missing)
		assert.Nil(t, m.GetPtr(missing))
	}

	assert.Equal(t, []string{"atest", "btest", "test", "test2"}, m.Keys())
	assert.Equal(t, []uint32{30, 100, 5, 20}, m.Values())
	assert.Equal(t, map[string]uint32{"atest": 30, "btest": 100, "test": 5, "test2": 20}, maps.Collect(m.Items()))

	removed, ok := m.Remove("test")
	assert.True(t, ok)
	assert.Equal(t, uint32(5), removed)
	assert.Equal(t, []string{"atest", "btest", "test2"}, m.Keys())
	assert.Equal(t, []uint32{30, 100, 20}, m.Values())
	assert.Equal(t, 3, m.Len())

	_, ok = m.Remove("test")
	assert.False(t, ok)
}

func TestMap_Search(t *testing.T) {
	m := New[int](0)
	m.Insert("b", 1)
	m.Insert("d", 2)

	i, found := m.Search("d")
	require.True(t, found)
	assert.Equal(t, "d", m.Keys()[i])
	m.Values()[i] = 20
	assert.Equal(t, 20, m.At("d"))

	for key, want := range map[string]int{"a": 0, "c": 1, "e": 2} {
		i, found := m.Search(key)
		assert.False(t, found, key)
		assert.Equal(t, want, i, key)
	}
}

func TestMap_ItemsOrder(t *testing.T) {
	m := New[int](4)
	for i, k := range []string{"d", "b", "a", "c"} {
		m.Insert(k, i)
	}

	var keys []string
	for k := range m.Items() {
		keys = append(keys, k)
		if k == "c" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestMap_AtPanics(t *testing.T) {
	m := New[int](0)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, containers.ErrNotFound))
	}()
	m.At("missing")
}

func TestMap_Clear(t *testing.T) {
	m := New[string](0)
	m.Insert("a", "x")
	m.Insert("b", "y")
	c := cap(m.Keys())

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.ContainsKey("a"))
	assert.Equal(t, c, cap(m.Keys()))

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestMap_RandomOperations(t *testing.T) {
	rng := testutil.NewRNG(7)
	m := New[int](0)
	ref := make(map[string]int)

	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	for i := range 2000 {
		k := keys[rng.Intn(len(keys))]
		if rng.Float64() < 0.6 {
			prev, replaced := m.Insert(k, i)
			refPrev, refOK := ref[k]
			assert.Equal(t, refOK, replaced)
			if refOK {
				assert.Equal(t, refPrev, prev)
			}
			ref[k] = i
		} else {
			v, ok := m.Remove(k)
			refV, refOK := ref[k]
			assert.Equal(t, refOK, ok)
			assert.Equal(t, refV, v)
			delete(ref, k)
		}
	}

	want := slices.Sorted(maps.Keys(ref))
	assert.Equal(t, want, append([]string(nil), m.Keys()...))
	assert.True(t, slices.IsSorted(m.Keys()))
	assert.Equal(t, ref, maps.Collect(m.Items()))
}
