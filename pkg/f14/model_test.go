package f14_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/f14map/pkg/f14"
)

// This file is a state-model property test: the same operation sequence is
// applied to a plain map[int]int (the model, with no tombstones and no
// capacity limit) and to the real f14.Table, and every observation the two
// make is required to match. This is the same shape of test this domain's
// slot-cache package applies against its own model package, adapted from a
// file-backed cache to an in-memory table.

type modelOp int

const (
	opInsert modelOp = iota
	opRemove
	opGet
	opClear
	opRebuild
)

func Test_Table_Matches_Map_Model_Property(t *testing.T) {
	t.Parallel()

	const (
		seedCount  = 30
		opsPerSeed = 500
		keySpace   = 200
	)

	for seed := int64(1); seed <= seedCount; seed++ {
		seed := seed

		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(seed))

			model := make(map[int]int)
			table := f14.New[int, int]()

			for i := 0; i < opsPerSeed; i++ {
				key := rng.Intn(keySpace)

				switch modelOp(rng.Intn(5)) {
				case opInsert:
					val := rng.Intn(1 << 20)

					wantOld, wantExisted := model[key]
					model[key] = val

					gotOld, gotExisted, err := table.Insert(key, val)
					require.NoError(t, err)
					require.Equal(t, wantExisted, gotExisted, "op %d Insert(%d,%d) existed mismatch", i, key, val)

					if wantExisted {
						require.Equal(t, wantOld, gotOld, "op %d Insert(%d,%d) old-value mismatch", i, key, val)
					}

				case opRemove:
					wantVal, wantOk := model[key]
					delete(model, key)

					gotVal, gotOk := table.Remove(key)
					require.Equal(t, wantOk, gotOk, "op %d Remove(%d) found mismatch", i, key)

					if wantOk {
						require.Equal(t, wantVal, gotVal, "op %d Remove(%d) value mismatch", i, key)
					}

				case opGet:
					wantVal, wantOk := model[key]

					gotVal, gotOk := table.Get(key)
					require.Equal(t, wantOk, gotOk, "op %d Get(%d) found mismatch", i, key)

					if wantOk {
						require.Equal(t, wantVal, gotVal, "op %d Get(%d) value mismatch", i, key)
					}

				case opClear:
					model = make(map[int]int)
					table.Clear()

				case opRebuild:
					require.NoError(t, table.Rebuild())
				}

				require.Equal(t, len(model), table.Len(), "op %d Len mismatch", i)
			}

			snapshot := make(map[int]int, table.Len())
			for k, v := range table.All() {
				snapshot[k] = v
			}

			if diff := cmp.Diff(model, snapshot); diff != "" {
				t.Fatalf("table state diverged from model (-model +table):\n%s", diff)
			}
		})
	}
}
