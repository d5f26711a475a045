package dictionary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_NewKeyReturnsOK(t *testing.T) {
	d := New[string, int]()
	status, err := d.Insert("a", 1)

	require.NoError(t, err)
	assert.Equal(t, OK, status)
	assert.Equal(t, 1, d.Len())
}

func TestInsert_OverwriteReturnsOKReplaced(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 1)

	status, err := d.Insert("a", 2)

	require.NoError(t, err)
	assert.Equal(t, OKReplaced, status)
	v, found := d.Get("a")
	require.True(t, found)
	assert.Equal(t, 2, v)
}

func TestInsert_IdenticalPairReturnsOKUnchanged(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 1)

	status, err := d.Insert("a", 1)

	require.NoError(t, err)
	assert.Equal(t, OKUnchanged, status)
	assert.Equal(t, 1, d.Len())
}

func TestGet_MissingKeyReturnsFalse(t *testing.T) {
	d := New[string, int]()
	_, found := d.Get("nope")
	assert.False(t, found)
}

func TestGetItem_ReturnsKeyAndValue(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 7)

	item, found := d.GetItem("a")

	require.True(t, found)
	assert.Equal(t, Item[string, int]{Key: "a", Value: 7}, item)
}

func TestContains(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 1)

	assert.True(t, d.Contains("a"))
	assert.False(t, d.Contains("b"))
}

func TestDelete_RemovesKeyAndDecrementsLen(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 1)
	_, _ = d.Insert("b", 2)

	err := d.Delete("a")

	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	assert.False(t, d.Contains("a"))
	assert.True(t, d.Contains("b"))
}

func TestDelete_MissingKeyReturnsKeyNotFound(t *testing.T) {
	d := New[string, int]()

	err := d.Delete("nope")

	require.Error(t, err)
	assert.True(t, IsKeyNotFound(err))
}

func TestDelete_ThenReinsertAppearsAfterSurvivors(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 1)
	_, _ = d.Insert("b", 2)
	require.NoError(t, d.Delete("a"))
	_, _ = d.Insert("a", 3)

	keys := d.Keys()
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestLenIsEmptyClear(t *testing.T) {
	d := New[string, int]()
	assert.True(t, d.IsEmpty())

	_, _ = d.Insert("a", 1)
	assert.False(t, d.IsEmpty())
	assert.Equal(t, 1, d.Len())

	d.Clear()
	assert.True(t, d.IsEmpty())
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Contains("a"))
}

func TestCopy_IsIndependentOfSource(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 1)

	c := d.Copy()
	_, _ = c.Insert("b", 2)

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 2, c.Len())
}

func TestCopy_PreservesEntries(t *testing.T) {
	d := New[string, int]()
	for i, k := range []string{"a", "b", "c"} {
		_, _ = d.Insert(k, i)
	}

	c := d.Copy()

	assert.True(t, d.Equal(c))
	assert.ElementsMatch(t, d.Items(), c.Items())
}

func TestUpdate_NoOverrideKeepsExistingValues(t *testing.T) {
	a := New[string, int]()
	_, _ = a.Insert("x", 1)
	b := New[string, int]()
	_, _ = b.Insert("x", 99)
	_, _ = b.Insert("y", 2)

	err := a.Update(b, false)

	require.NoError(t, err)
	v, _ := a.Get("x")
	assert.Equal(t, 1, v)
	v, _ = a.Get("y")
	assert.Equal(t, 2, v)
}

func TestUpdate_OverrideReplacesExistingValues(t *testing.T) {
	a := New[string, int]()
	_, _ = a.Insert("x", 1)
	b := New[string, int]()
	_, _ = b.Insert("x", 99)

	err := a.Update(b, true)

	require.NoError(t, err)
	v, _ := a.Get("x")
	assert.Equal(t, 99, v)
}

func TestUpdate_NilOtherReturnsDictionaryNilError(t *testing.T) {
	a := New[string, int]()

	err := a.Update(nil, true)

	require.Error(t, err)
	assert.True(t, IsDictionaryNil(err))
}

func TestUpdate_SelfIsNoOp(t *testing.T) {
	a := New[string, int]()
	_, _ = a.Insert("x", 1)

	err := a.Update(a, true)

	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
}

func TestMerge_ReturnsNewDictionaryLeavingInputsUntouched(t *testing.T) {
	a := New[string, int]()
	_, _ = a.Insert("x", 1)
	b := New[string, int]()
	_, _ = b.Insert("y", 2)

	merged, err := Merge(a, b, false)

	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 2, merged.Len())
	v, _ := merged.Get("x")
	assert.Equal(t, 1, v)
	v, _ = merged.Get("y")
	assert.Equal(t, 2, v)
}

func TestEqual_ReflexiveAndSymmetric(t *testing.T) {
	a := New[string, int]()
	_, _ = a.Insert("x", 1)
	b := New[string, int]()
	_, _ = b.Insert("x", 1)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestEqual_DifferentValuesAreNotEqual(t *testing.T) {
	a := New[string, int]()
	_, _ = a.Insert("x", 1)
	b := New[string, int]()
	_, _ = b.Insert("x", 2)

	assert.False(t, a.Equal(b))
}

func TestEqual_NilOtherIsFalse(t *testing.T) {
	a := New[string, int]()
	assert.False(t, a.Equal(nil))
}

func TestNewFromSlices_PairsUpKeysAndValues(t *testing.T) {
	keys := []string{"a", "b", "c"}
	values := []int{1, 2, 3}

	d, err := NewFromSlices(keys, values)

	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	for i, k := range keys {
		v, found := d.Get(k)
		require.True(t, found)
		assert.Equal(t, values[i], v)
	}
}

func TestNewFromSlices_NilValuesCreatesTombstonedEntries(t *testing.T) {
	keys := []string{"a", "b"}

	d, err := NewFromSlices[string, int](keys, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Contains("a"))
}

func TestNewFromSlices_MismatchedLengthsReturnsInvalidInput(t *testing.T) {
	_, err := NewFromSlices([]string{"a", "b"}, []int{1})

	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
}

func TestResize_PreservesAllEntries(t *testing.T) {
	d := New[string, int]()
	const n = 500
	for i := 0; i < n; i++ {
		_, err := d.Insert(keyFor(i), i)
		require.NoError(t, err)
	}

	require.Equal(t, n, d.Len())
	for i := 0; i < n; i++ {
		v, found := d.Get(keyFor(i))
		require.True(t, found)
		assert.Equal(t, i, v)
	}
}

func TestResize_LoadBoundNeverExceeded(t *testing.T) {
	d := New[string, int]()
	for i := 0; i < 1000; i++ {
		_, _ = d.Insert(keyFor(i), i)
	}

	assert.LessOrEqual(t, d.usedCount, usable(d.index.capacity))
}

func TestIndexWidth_CrossesByteBoundary(t *testing.T) {
	d := NewPresized[int64, int](200)
	for i := 0; i < 200; i++ {
		_, _ = d.Insert(int64(i), i)
	}

	if d.index.capacity > 256 {
		assert.IsType(t, index16{}, d.index.store)
	}
}

func TestKeysValuesItems_InsertionOrder(t *testing.T) {
	d := New[string, int]()
	order := []string{"z", "a", "m"}
	for i, k := range order {
		_, _ = d.Insert(k, i)
	}

	assert.Equal(t, order, d.Keys())
	assert.Equal(t, []int{0, 1, 2}, d.Values())

	wantItems := []Item[string, int]{{"z", 0}, {"a", 1}, {"m", 2}}
	if diff := cmp.Diff(wantItems, d.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
}

func TestStats_ReflectsLoadAndTombstones(t *testing.T) {
	d := New[string, int]()
	for i := 0; i < 10; i++ {
		_, _ = d.Insert(keyFor(i), i)
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, d.Delete(keyFor(i)))
	}

	stats := d.Stats()
	assert.Equal(t, 5, stats.ActiveCount)
	assert.Equal(t, 10, stats.UsedCount)
	assert.InDelta(t, 0.5, stats.TombstoneFactor, 0.0001)
}

func TestString_ReportsLoad(t *testing.T) {
	d := New[string, int]()
	_, _ = d.Insert("a", 1)

	s := d.String()
	assert.Contains(t, s, "active=1")
}

func keyFor(i int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	return string(alphabet[i%len(alphabet)]) + string(rune('0'+(i/len(alphabet))%10)) + string(rune('A'+(i/(len(alphabet)*10))%26))
}
