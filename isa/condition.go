package isa

// Condition is the predicate under which an Rri instruction takes effect.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_ALWAYS       = Condition(0) // al
	COND_OVERFLOW     = Condition(1) // ov
	COND_CARRY        = Condition(2) // cs
	COND_ZERO         = Condition(3) // z
	COND_NEGATIVE     = Condition(4) // n
	COND_NOT_ZERO     = Condition(5) // nz
	COND_NOT_NEGATIVE = Condition(6) // nn
	COND_GREATER_THAN = Condition(7) // gt
)

// Valid returns true for a defined condition.
func (cond Condition) Valid() bool {
	return cond >= COND_ALWAYS && cond <= COND_GREATER_THAN
}

func decodeCondition(value uint32) (cond Condition, ok bool) {
	cond = Condition(value)
	if !cond.Valid() {
		return 0, false
	}
	return cond, true
}
