package train

import (
	"github.com/google/uuid"
)

// Stage identifies where in the per-suite pipeline a failure occurred.
type Stage int

const (
	// StageBuild is network construction from the suite's settings.
	StageBuild Stage = iota

	// StageTrain is the training of the constructed network.
	StageTrain
)

// String returns "build" or "train".
func (s Stage) String() string {
	switch s {
	case StageBuild:
		return "build"
	case StageTrain:
		return "train"
	default:
		return "unknown"
	}
}

// Failure records one skipped suite: its index, the stage that failed,
// and the underlying error.
type Failure struct {
	Suite int
	Stage Stage
	Err   error
}

// Report summarizes one driver run: how many suites the sequence held
// and which of them were skipped. The accumulated result a run returns
// only covers the suites absent from Failures.
type Report struct {
	// RunID uniquely identifies the run, for correlating logs.
	RunID uuid.UUID

	// Suites is the sequence length.
	Suites int

	// Failures lists skipped suites in sequence order. Empty when
	// every suite contributed to the result.
	Failures []Failure
}

// AllSucceeded reports whether no suite was skipped.
func (r Report) AllSucceeded() bool { return len(r.Failures) == 0 }

// SkippedSuites returns the indices of skipped suites, in order.
func (r Report) SkippedSuites() []int {
	if len(r.Failures) == 0 {
		return nil
	}
	out := make([]int, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.Suite
	}
	return out
}
