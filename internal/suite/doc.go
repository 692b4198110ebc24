// Package suite turns a declarative space of scalar-or-list network and
// training settings into an ordered sequence of fully resolved training
// suites.
//
// A SettingSpace collects raw settings where every value may be given
// once or as a parallel list of candidates. Validation happens in one
// place, at freeze time: required settings are checked, defaults are
// filled, kinds are verified, and the expansion length N (the shared
// length of all list-valued settings) is established. A frozen space
// expands into a Sequence of N Suites, where suite i takes the i-th
// list element of every multi-valued setting and the single value of
// every scalar one.
//
// The Builder offers the chainable way to assemble a space:
//
//	seq, err := suite.NewBuilder().
//	    InputUnits(4).
//	    OutputUnits(1).
//	    HiddenUnits(3, 5).
//	    LearningRate(0.1).
//	    Build()
//
// A single argument sets a scalar; multiple arguments set a candidate
// list. Build validates, freezes, and returns the lazy Sequence.
package suite
