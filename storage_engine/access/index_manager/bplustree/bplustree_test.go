package bplus

import (
	"math/rand"
	"testing"

	"DukaDB/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(id int32) types.Row {
	return types.Row{types.IntValue(id)}
}

func TestInsertSearch(t *testing.T) {
	tree := NewBPlusTree(nil)
	assert.Nil(t, tree.Search(types.IntValue(1)))

	tree.Insert(types.IntValue(5), row(5))
	tree.Insert(types.IntValue(3), row(3))
	tree.Insert(types.IntValue(5), row(50))

	assert.Equal(t, []types.Row{row(5), row(50)}, tree.Search(types.IntValue(5)))
	assert.Equal(t, []types.Row{row(3)}, tree.Search(types.IntValue(3)))
	assert.Nil(t, tree.Search(types.IntValue(4)))
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 3, tree.Rows())
}

func TestManyKeysSplitAndStayOrdered(t *testing.T) {
	tree := NewBPlusTree(nil)
	const n = 2000
	perm := rand.New(rand.NewSource(7)).Perm(n)
	for _, k := range perm {
		tree.Insert(types.IntValue(int32(k)), row(int32(k)))
	}
	require.Equal(t, n, tree.Len())

	for k := 0; k < n; k++ {
		got := tree.Search(types.IntValue(int32(k)))
		require.Len(t, got, 1, "key %d", k)
		assert.Equal(t, row(int32(k)), got[0])
	}

	it := tree.First()
	prev := int32(-1)
	count := 0
	for ok := it.Valid(); ok; ok = it.Next() {
		k := it.Key().Int()
		assert.Greater(t, k, prev)
		prev = k
		count++
	}
	it.Close()
	assert.Equal(t, n, count)
}

func TestRangeInclusive(t *testing.T) {
	tree := NewBPlusTree(nil)
	for k := int32(0); k < 100; k++ {
		tree.Insert(types.IntValue(k), row(k))
	}

	got := tree.Range(types.IntValue(10), types.IntValue(14))
	assert.Equal(t, []types.Row{row(10), row(11), row(12), row(13), row(14)}, got)

	assert.Len(t, tree.Range(types.NullValue(), types.IntValue(4)), 5)
	assert.Len(t, tree.Range(types.IntValue(95), types.NullValue()), 5)
	assert.Empty(t, tree.Range(types.IntValue(200), types.IntValue(300)))
}

func TestSeekGE(t *testing.T) {
	tree := NewBPlusTree(nil)
	for _, k := range []int32{10, 20, 30} {
		tree.Insert(types.IntValue(k), row(k))
	}
	it := tree.SeekGE(types.IntValue(15))
	require.True(t, it.Valid())
	assert.Equal(t, int32(20), it.Key().Int())
	it.Close()

	it = tree.SeekGE(types.IntValue(31))
	assert.False(t, it.Valid())
	it.Close()
}

func TestDelete(t *testing.T) {
	tree := NewBPlusTree(nil)
	for k := int32(0); k < 200; k++ {
		tree.Insert(types.IntValue(k), row(k))
	}
	for k := int32(0); k < 200; k += 2 {
		assert.True(t, tree.Delete(types.IntValue(k)))
	}
	assert.False(t, tree.Delete(types.IntValue(0)))
	assert.Equal(t, 100, tree.Len())
	assert.Nil(t, tree.Search(types.IntValue(42)))
	assert.Len(t, tree.Search(types.IntValue(43)), 1)

	// re-inserting after deletes keeps order
	tree.Insert(types.IntValue(42), row(42))
	got := tree.Range(types.IntValue(40), types.IntValue(44))
	assert.Equal(t, []types.Row{row(41), row(42), row(43)}, got)
}

func TestTextKeys(t *testing.T) {
	tree := NewBPlusTree(nil)
	for _, s := range []string{"pear", "apple", "fig"} {
		tree.Insert(types.TextValue(s), types.Row{types.TextValue(s)})
	}
	it := tree.First()
	var keys []string
	for ok := it.Valid(); ok; ok = it.Next() {
		keys = append(keys, it.Key().Text())
	}
	it.Close()
	assert.Equal(t, []string{"apple", "fig", "pear"}, keys)
}
