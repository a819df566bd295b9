package f14_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/f14map/pkg/f14"
)

func Test_Mutate_Delete_Tombstones_Without_Shrinking_Capacity(t *testing.T) {
	t.Parallel()

	table := f14.New[int, int]()

	for i := 0; i < 30; i++ {
		table.Insert(i, i)
	}

	capacityBefore := table.Capacity()

	table.Mutate(func(c *f14.MutCursor[int, int]) bool {
		if c.Key()%2 == 0 {
			c.Delete()
		}

		return true
	})

	require.Equal(t, capacityBefore, table.Capacity())
	require.Equal(t, 15, table.Len())
	require.Equal(t, 15, table.DeletedCount())

	for i := 0; i < 30; i++ {
		v, ok := table.Get(i)

		if i%2 == 0 {
			require.False(t, ok)
		} else {
			require.True(t, ok)
			require.Equal(t, i, v)
		}
	}
}

func Test_Mutate_Stops_Early_When_Callback_Returns_False(t *testing.T) {
	t.Parallel()

	table := f14.New[int, int]()

	for i := 0; i < 50; i++ {
		table.Insert(i, i)
	}

	var visited int
	table.Mutate(func(c *f14.MutCursor[int, int]) bool {
		visited++
		return visited < 10
	})

	require.Equal(t, 10, visited)
}

func Test_IntoSeq_Stops_Early_When_Yield_Returns_False(t *testing.T) {
	t.Parallel()

	table := f14.New[int, int]()

	for i := 0; i < 40; i++ {
		table.Insert(i, i*i)
	}

	total := table.Len()

	var count int
	for k, v := range table.IntoSeq() {
		count++
		require.Equal(t, k*k, v)

		if count == 5 {
			break
		}
	}

	require.Equal(t, 5, count)
	require.Less(t, table.Len(), total)
}

func Test_All_Does_Not_Mutate_Table(t *testing.T) {
	t.Parallel()

	table := f14.New[int, int]()

	for i := 0; i < 25; i++ {
		table.Insert(i, i)
	}

	before := table.Len()

	for range table.All() {
	}

	require.Equal(t, before, table.Len())
}
