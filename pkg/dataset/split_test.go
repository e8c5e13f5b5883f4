package dataset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specminer/core/pkg/dataset"
	"github.com/specminer/core/pkg/domain"
)

func makeRecords(n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			SourceFile: "spec.yaml",
			Type:       domain.TypeOperationDescription,
			InputText:  fmt.Sprintf("ctx-%03d", i),
			TargetText: fmt.Sprintf("target %d", i),
		}
	}
	return records
}

func TestSplit(t *testing.T) {
	t.Run("should partition roughly 80/10/10", func(t *testing.T) {
		ds, err := dataset.Split(makeRecords(100), dataset.DefaultSeed, dataset.DefaultRatios)
		require.NoError(t, err)

		assert.Len(t, ds.Train, 80)
		assert.Len(t, ds.Val, 10)
		assert.Len(t, ds.Test, 10)
	})

	t.Run("should account for every record exactly once", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 7, 10, 99, 1000} {
			ds, err := dataset.Split(makeRecords(n), dataset.DefaultSeed, dataset.DefaultRatios)
			require.NoError(t, err, "n=%d", n)
			assert.Equal(t, n, ds.Size(), "n=%d", n)

			seen := make(map[string]int)
			for _, part := range [][]domain.Record{ds.Train, ds.Val, ds.Test} {
				for _, r := range part {
					seen[r.InputText]++
				}
			}
			assert.Len(t, seen, n, "n=%d", n)
			for ctx, count := range seen {
				assert.Equal(t, 1, count, "record %s landed in %d partitions", ctx, count)
			}
		}
	})

	t.Run("should be deterministic for a fixed seed", func(t *testing.T) {
		records := makeRecords(137)

		first, err := dataset.Split(records, 42, dataset.DefaultRatios)
		require.NoError(t, err)
		second, err := dataset.Split(records, 42, dataset.DefaultRatios)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should change with the seed", func(t *testing.T) {
		records := makeRecords(137)

		first, err := dataset.Split(records, 42, dataset.DefaultRatios)
		require.NoError(t, err)
		second, err := dataset.Split(records, 7, dataset.DefaultRatios)
		require.NoError(t, err)

		assert.NotEqual(t, first.Train, second.Train)
	})

	t.Run("should reject an empty input", func(t *testing.T) {
		_, err := dataset.Split(nil, 42, dataset.DefaultRatios)
		assert.ErrorIs(t, err, dataset.ErrEmptyCorpus)
	})

	t.Run("should reject invalid ratios", func(t *testing.T) {
		for _, ratios := range []dataset.Ratios{
			{Train: 0.8, Val: 0.1, Test: 0.2},
			{Train: 0, Val: 0.5, Test: 0.5},
			{Train: 1.2, Val: -0.1, Test: -0.1},
		} {
			_, err := dataset.Split(makeRecords(10), 42, ratios)
			assert.Error(t, err, "ratios %+v", ratios)
		}
	})

	t.Run("should honor alternative ratios", func(t *testing.T) {
		ds, err := dataset.Split(makeRecords(100), 42, dataset.Ratios{Train: 0.5, Val: 0.25, Test: 0.25})
		require.NoError(t, err)

		assert.Len(t, ds.Train, 50)
		assert.Len(t, ds.Val, 25)
		assert.Len(t, ds.Test, 25)
	})
}

func TestRatiosValidate(t *testing.T) {
	assert.NoError(t, dataset.DefaultRatios.Validate())
	assert.Error(t, dataset.Ratios{Train: 0.9, Val: 0.1, Test: 0.1}.Validate())
	assert.Error(t, dataset.Ratios{Train: 1, Val: 0, Test: 0}.Validate())
}
