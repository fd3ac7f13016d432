package calc

import (
	"context"

	"github.com/ib-77/calcpipe/pkg/pipe"
)

// DataProcessor pipes each incoming value through Transform and Filter and
// accumulates the filtered results in an exclusively owned Calculator.
// Exactly one Calculator is live at any time; Reset replaces it wholesale.
type DataProcessor struct {
	calc *Calculator
	// accumulator shadows the calculator's total. It is maintained for every
	// processed value but never surfaced by any exported method.
	accumulator int
}

func NewDataProcessor() *DataProcessor {
	return &DataProcessor{
		calc:        New(0),
		accumulator: 0,
	}
}

// Process runs value through the transform and filter stages and adds the
// filtered result to the owned calculator.
func (p *DataProcessor) Process(ctx context.Context, value int) {
	filtered := pipe.FromValue(ctx, value).
		Map(Transform).
		Map(Filter).
		Value()

	p.accumulator = p.accumulator + filtered
	p.calc.Add(filtered)
}

// Result returns the owned calculator's current value.
func (p *DataProcessor) Result() int {
	return p.calc.Value()
}

// Reset discards the owned calculator and replaces it with a fresh
// Calculator seeded at 0. The accumulator is zeroed as well.
func (p *DataProcessor) Reset() {
	p.accumulator = 0
	p.calc = New(0)
}
