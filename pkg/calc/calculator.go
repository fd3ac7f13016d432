package calc

import (
	"time"

	"github.com/google/uuid"
)

// Calculator holds a running value and a stored multiplier. The multiplier
// never acts on the value at the moment it is supplied; it is applied on the
// following Multiply call (see Multiply).
type Calculator struct {
	id         uuid.UUID
	createdAt  time.Time
	value      int
	multiplier int
}

// New returns a Calculator seeded with initial and a multiplier of 1.
func New(initial int) *Calculator {
	return &Calculator{
		id:         uuid.New(),
		createdAt:  time.Now().UTC(),
		value:      initial,
		multiplier: 1,
	}
}

// Add increases the running value by x.
func (c *Calculator) Add(x int) {
	c.value = c.value + x
}

// Multiply first applies the previously stored multiplier to the running
// value, then stores x as the multiplier for the next call. The factor
// supplied here is never applied within the same call.
func (c *Calculator) Multiply(x int) {
	c.value = c.value * c.multiplier
	c.multiplier = x
}

// Value returns the current running value.
func (c *Calculator) Value() int {
	return c.value
}

// SetMultiplier overwrites the stored multiplier directly, leaving the
// running value untouched.
func (c *Calculator) SetMultiplier(m int) {
	c.multiplier = m
}

// Id identifies this calculator instance across processor resets.
func (c *Calculator) Id() uuid.UUID {
	return c.id
}

// CreatedAt time creation (UTC)
func (c *Calculator) CreatedAt() time.Time {
	return c.createdAt
}
