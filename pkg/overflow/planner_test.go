package overflow_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/overflow"
)

func sequence(n int) []any {
	items := make([]any, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestSplit_PartitionLaw(t *testing.T) {
	cases := []struct {
		name        string
		items       int
		maxInMain   int
		perPage     int
		wantMain    int
		wantBatches []int
	}{
		{name: "no overflow exact fit", items: 5, maxInMain: 5, perPage: 10, wantMain: 5},
		{name: "capacity exceeds items", items: 3, maxInMain: 10, perPage: 10, wantMain: 3},
		{name: "empty input", items: 0, maxInMain: 5, perPage: 10, wantMain: 0},
		{name: "single full batch", items: 15, maxInMain: 5, perPage: 10, wantMain: 5, wantBatches: []int{10}},
		{name: "final short batch", items: 23, maxInMain: 5, perPage: 10, wantMain: 5, wantBatches: []int{10, 8}},
		{name: "zero main capacity", items: 4, maxInMain: 0, perPage: 2, wantMain: 0, wantBatches: []int{2, 2}},
		{name: "one item per page", items: 3, maxInMain: 1, perPage: 1, wantMain: 1, wantBatches: []int{1, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := sequence(tc.items)
			plan, err := overflow.Split(items, tc.maxInMain, tc.perPage)
			if err != nil {
				t.Fatalf("split: %v", err)
			}

			if len(plan.MainPageItems) != tc.wantMain {
				t.Fatalf("main items = %d, want %d", len(plan.MainPageItems), tc.wantMain)
			}

			var batchSizes []int
			for _, batch := range plan.AddendumBatches {
				batchSizes = append(batchSizes, len(batch))
			}
			if diff := cmp.Diff(tc.wantBatches, batchSizes); diff != "" {
				t.Fatalf("batch sizes mismatch (-want +got):\n%s", diff)
			}

			// Order-preserving partition: main + batches reproduce the input.
			rejoined := make([]any, 0, len(items))
			rejoined = append(rejoined, plan.MainPageItems...)
			for _, batch := range plan.AddendumBatches {
				rejoined = append(rejoined, batch...)
			}
			if diff := cmp.Diff(items, rejoined); diff != "" {
				t.Fatalf("partition not order-preserving (-want +got):\n%s", diff)
			}

			if plan.Overflowed() != (len(tc.wantBatches) > 0) {
				t.Fatalf("Overflowed() = %v, want %v", plan.Overflowed(), len(tc.wantBatches) > 0)
			}
		})
	}
}

func TestSplit_InvalidConfig(t *testing.T) {
	cases := []struct {
		maxInMain int
		perPage   int
	}{
		{maxInMain: 5, perPage: 0},
		{maxInMain: 5, perPage: -1},
		{maxInMain: -1, perPage: 10},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("main=%d per=%d", tc.maxInMain, tc.perPage), func(t *testing.T) {
			_, err := overflow.Split(sequence(20), tc.maxInMain, tc.perPage)
			var invalid *overflow.InvalidConfigError
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want InvalidConfigError", err)
			}
		})
	}
}

func TestSplit_DormantPerPageMisconfiguration(t *testing.T) {
	// perPage is only validated when overflow actually triggers.
	plan, err := overflow.Split(sequence(3), 5, 0)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if plan.Overflowed() {
		t.Fatal("expected no overflow")
	}
}
