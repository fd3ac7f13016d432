package calc

import (
	"context"

	"github.com/ib-77/calcpipe/internal/debuglog"
)

// threshold is the strict lower bound for Filter; values at or below it
// are zeroed out.
const threshold = 10

// Transform doubles the input. Native int overflow wraps; the boundary is
// documented, not guarded.
func Transform(ctx context.Context, input int) int {
	result := input * 2
	debuglog.Printf("Transform: %d -> %d", input, result)
	return result
}

// Filter passes value unchanged when it is strictly greater than the
// threshold and maps everything else to 0. The threshold itself is zeroed.
func Filter(ctx context.Context, value int) int {
	debuglog.Printf("Filter: %d", value)

	if value > threshold {
		return value
	}
	return 0
}
