// Package dataset partitions mined records and persists them for training.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/specminer/core/pkg/domain"
)

// DefaultSeed is the split seed used when none is configured.
const DefaultSeed = 42

// ErrEmptyCorpus is returned when zero records survived extraction and
// deduplication. An empty dataset cannot be partitioned or trained on.
var ErrEmptyCorpus = errors.New("dataset: no records extracted from corpus")

// Ratios holds the train/val/test partition fractions.
type Ratios struct {
	Train float64
	Val   float64
	Test  float64
}

// DefaultRatios is the standard 80/10/10 partition.
var DefaultRatios = Ratios{Train: 0.8, Val: 0.1, Test: 0.1}

// Validate checks that each ratio is in (0, 1) and that they sum to 1.
func (r Ratios) Validate() error {
	for _, v := range []float64{r.Train, r.Val, r.Test} {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("dataset: ratio %v outside (0, 1)", v)
		}
	}
	if math.Abs(r.Train+r.Val+r.Test-1) > 1e-9 {
		return fmt.Errorf("dataset: ratios sum to %v, want 1", r.Train+r.Val+r.Test)
	}
	return nil
}

// Split deterministically partitions records into train/val/test.
//
// The draw is two-stage over a single seeded stream: a permutation selects
// the train share first, then a second permutation of the remainder divides
// it between val and test. The same seed and the same input sequence always
// produce identical partitions; every input record lands in exactly one
// partition.
func Split(records []domain.Record, seed int64, ratios Ratios) (domain.Dataset, error) {
	if len(records) == 0 {
		return domain.Dataset{}, ErrEmptyCorpus
	}
	if err := ratios.Validate(); err != nil {
		return domain.Dataset{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	n := len(records)

	trainN := int(float64(n) * ratios.Train)
	perm := rng.Perm(n)

	train := pick(records, perm[:trainN])
	temp := pick(records, perm[trainN:])

	valShare := ratios.Val / (ratios.Val + ratios.Test)
	valN := int(math.Round(float64(len(temp)) * valShare))
	tempPerm := rng.Perm(len(temp))

	return domain.Dataset{
		Train: train,
		Val:   pick(temp, tempPerm[:valN]),
		Test:  pick(temp, tempPerm[valN:]),
	}, nil
}

func pick(records []domain.Record, indices []int) []domain.Record {
	out := make([]domain.Record, 0, len(indices))
	for _, i := range indices {
		out = append(out, records[i])
	}
	return out
}
