package f14_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/f14map/pkg/f14"
)

func Test_FNV1a64Hasher_Is_Deterministic_And_Equal_Keys_Hash_Equal(t *testing.T) {
	t.Parallel()

	h := f14.FNV1a64Hasher{}

	require.Equal(t, h.Hash("hello"), h.Hash("hello"))
	require.NotEqual(t, h.Hash("hello"), h.Hash("world"))
}

func Test_ConstantHasher_Always_Returns_Its_Configured_Value(t *testing.T) {
	t.Parallel()

	h := f14.ConstantHasher[string]{Value: 42}

	require.Equal(t, uint64(42), h.Hash("a"))
	require.Equal(t, uint64(42), h.Hash("completely different key"))
}

func Test_Table_With_FNV1a64Hasher_Is_Reproducible_Across_Instances(t *testing.T) {
	t.Parallel()

	build := func() *f14.Table[string, int] {
		table := f14.NewWithHasher[string, int](f14.FNV1a64Hasher{})
		for i, k := range []string{"a", "b", "c", "d", "e"} {
			table.Insert(k, i)
		}
		return table
	}

	a := build()
	b := build()

	require.Equal(t, a.GoString(), b.GoString())
}
