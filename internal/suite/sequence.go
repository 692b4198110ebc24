package suite

import (
	"fmt"
	"iter"
)

// Sequence is a finite, ordered, lazy sequence of resolved Suites over
// a frozen SettingSpace. Suite i is computed on demand from the frozen
// settings, which makes the sequence inherently restartable: traversing
// it twice yields content-identical suites both times.
type Sequence struct {
	space *SettingSpace
}

// newSequence wraps a frozen space. The space must be frozen.
func newSequence(space *SettingSpace) *Sequence {
	if !space.Frozen() {
		panic("suite: Sequence over an unfrozen SettingSpace")
	}
	return &Sequence{space: space}
}

// Len returns the number of suites, the expansion length N of the
// originating space. Always at least 1.
func (q *Sequence) Len() int { return q.space.ExpansionLength() }

// At returns the suite at index i, resolving every setting to its i-th
// candidate (or its single value, for scalar settings).
//
// Panics when i is out of [0, Len()), as that is a programmer error.
func (q *Sequence) At(i int) Suite {
	if i < 0 || i >= q.Len() {
		panic(fmt.Sprintf("suite: sequence index %d out of range [0, %d)", i, q.Len()))
	}
	return q.space.suiteAt(i)
}

// All iterates the suites in ascending index order:
//
//	for i, s := range seq.All() { ... }
func (q *Sequence) All() iter.Seq2[int, Suite] {
	return func(yield func(int, Suite) bool) {
		for i := 0; i < q.Len(); i++ {
			if !yield(i, q.At(i)) {
				return
			}
		}
	}
}
