// Package overflow partitions repeating data that exceeds a section's
// main-page capacity into addendum-page batches.
package overflow

import "fmt"

// InvalidConfigError reports an overflow configuration that cannot paginate,
// such as a non-positive items-per-page when overflow actually triggers.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("overflow: invalid configuration: %s", e.Reason)
}

// Plan is an order-preserving partition of the original item sequence: the
// concatenation of MainPageItems and every AddendumBatches element, in order,
// reproduces the input exactly.
type Plan struct {
	MainPageItems   []any
	AddendumBatches [][]any
}

// Overflowed reports whether any addendum pages are required.
func (p Plan) Overflowed() bool { return len(p.AddendumBatches) > 0 }

// Split computes how many items fit on the main page and batches the
// remainder. maxInMain caps the main page (clamped at the item count);
// perPage sizes each addendum batch, the final batch may be smaller. perPage
// is only validated when overflow actually triggers, so a template with
// capacity for all its data never fails on a dormant misconfiguration.
func Split(items []any, maxInMain, perPage int) (Plan, error) {
	if maxInMain < 0 {
		return Plan{}, &InvalidConfigError{Reason: fmt.Sprintf("max items in main is negative (%d)", maxInMain)}
	}

	main := maxInMain
	if main > len(items) {
		main = len(items)
	}

	plan := Plan{MainPageItems: items[:main]}
	remaining := items[main:]
	if len(remaining) == 0 {
		return plan, nil
	}

	if perPage <= 0 {
		return Plan{}, &InvalidConfigError{Reason: fmt.Sprintf("items per overflow page must be positive, got %d", perPage)}
	}

	for len(remaining) > 0 {
		size := perPage
		if size > len(remaining) {
			size = len(remaining)
		}
		plan.AddendumBatches = append(plan.AddendumBatches, remaining[:size])
		remaining = remaining[size:]
	}
	return plan, nil
}
