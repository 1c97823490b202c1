package valves

import "math/bits"

const maxTargets = 64

// TargetSet is a set of PathTable slots. It is a value: every copy is
// independent, so a branch of a search can never see a sibling's changes.
type TargetSet uint64

func fullSet(n int) TargetSet {
	if n >= maxTargets {
		return ^TargetSet(0)
	}
	return TargetSet(1)<<n - 1
}

// Has reports whether slot is in s. Negative slots are never members.
func (s TargetSet) Has(slot int) bool {
	return slot >= 0 && s&(1<<slot) != 0
}

// Without returns s minus slot.
func (s TargetSet) Without(slot int) TargetSet {
	if slot < 0 {
		return s
	}
	return s &^ (1 << slot)
}

// Len returns the number of members.
func (s TargetSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Empty reports whether s has no members.
func (s TargetSet) Empty() bool { return s == 0 }

// Slots returns the members in ascending order.
func (s TargetSet) Slots() []int {
	out := make([]int, 0, s.Len())
	for r := uint64(s); r != 0; r &= r - 1 {
		out = append(out, bits.TrailingZeros64(r))
	}
	return out
}
