package domain

// Dataset is the deduplicated record set partitioned for training.
type Dataset struct {
	Train []Record `json:"train"`
	Val   []Record `json:"val"`
	Test  []Record `json:"test"`
}

// Size returns the total number of records across all partitions.
func (d Dataset) Size() int {
	return len(d.Train) + len(d.Val) + len(d.Test)
}

// Summary computes aggregate statistics over the dataset. The type breakdown
// covers every partition combined, matching the pre-split record set.
func (d Dataset) Summary() Summary {
	breakdown := make(map[RecordType]int)
	for _, part := range [][]Record{d.Train, d.Val, d.Test} {
		for _, r := range part {
			breakdown[r.Type]++
		}
	}
	return Summary{
		TotalExamples: d.Size(),
		TrainSize:     len(d.Train),
		ValSize:       len(d.Val),
		TestSize:      len(d.Test),
		TypeBreakdown: breakdown,
	}
}

// Summary holds the persisted dataset statistics.
type Summary struct {
	TotalExamples int                `json:"total_examples"`
	TrainSize     int                `json:"train_size"`
	ValSize       int                `json:"val_size"`
	TestSize      int                `json:"test_size"`
	TypeBreakdown map[RecordType]int `json:"type_breakdown"`
}
