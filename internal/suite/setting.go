package suite

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/optim"
)

// Name identifies one setting in the fixed schema.
type Name string

// Network settings.
const (
	SettingInputUnits  Name = "input_units"
	SettingOutputUnits Name = "output_units"
	SettingHiddenUnits Name = "hidden_units"
	SettingBias        Name = "bias"
	SettingActivations Name = "activation_fn"
)

// Training settings.
const (
	SettingTrainInputs  Name = "train_inputs"
	SettingTrainOutputs Name = "train_outputs"
	SettingLearningRate Name = "learning_rate"
	SettingErrorFn      Name = "error_fn"
	SettingMinimizer    Name = "minimizer"
	SettingIterations   Name = "iterations"
)

// Kind is the declared value kind of a setting.
type Kind int

// Setting kinds. The per-suite value of an activation setting is itself
// an ordered []network.Activation (one per layer), so its list form is
// a slice of such slices.
const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindActivations
	KindMatrix
	KindErrorFunc
	KindMinimizer
)

// String returns a human-readable kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	case KindActivations:
		return "[]network.Activation"
	case KindMatrix:
		return "*mat.Dense"
	case KindErrorFunc:
		return "network.ErrorFunc"
	case KindMinimizer:
		return "optim.Minimizer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// schemaEntry declares one setting of the fixed schema. A nil
// defaultValue marks the setting required with no default.
type schemaEntry struct {
	name         Name
	kind         Kind
	defaultValue any
}

// schema is the fixed set of network and training settings, in
// declaration order. Only the three layer widths are required without
// a default; a space carrying just those expands to one trainable
// suite. The training data defaults to nil matrices, which the trainer
// rejects at run time, so a data-less space still freezes cleanly.
var schema = []schemaEntry{
	{SettingInputUnits, KindInt, nil},
	{SettingOutputUnits, KindInt, nil},
	{SettingHiddenUnits, KindInt, nil},
	{SettingBias, KindBool, true},
	{SettingActivations, KindActivations, []network.Activation(nil)},
	{SettingTrainInputs, KindMatrix, (*mat.Dense)(nil)},
	{SettingTrainOutputs, KindMatrix, (*mat.Dense)(nil)},
	{SettingLearningRate, KindFloat, float64(0)},
	{SettingErrorFn, KindErrorFunc, network.SquaredError{}},
	{SettingMinimizer, KindMinimizer, optim.BFGS{}},
	{SettingIterations, KindInt, 10},
}

func schemaLookup(name Name) (schemaEntry, bool) {
	for _, e := range schema {
		if e.name == name {
			return e, true
		}
	}
	return schemaEntry{}, false
}

// setting is one normalized, frozen setting: a candidate list of one
// value (scalar) or N values (list).
type setting struct {
	name   Name
	kind   Kind
	values []any
	list   bool
}

// at returns the resolved value for suite index i.
func (s *setting) at(i int) any {
	if s.list {
		return s.values[i]
	}
	return s.values[0]
}

// normalize checks v against the declared kind and splits it into a
// candidate list. Scalars become a one-element list with list=false.
func normalize(name Name, kind Kind, v any) (values []any, list bool, err error) {
	mismatch := func() error {
		return &TypeMismatchError{Name: name, Want: kind, Got: fmt.Sprintf("%T", v)}
	}

	switch kind {
	case KindInt:
		switch t := v.(type) {
		case int:
			return []any{t}, false, nil
		case []int:
			return anySlice(t), true, nil
		}
	case KindFloat:
		switch t := v.(type) {
		case float64:
			return []any{t}, false, nil
		case []float64:
			return anySlice(t), true, nil
		}
	case KindBool:
		switch t := v.(type) {
		case bool:
			return []any{t}, false, nil
		case []bool:
			return anySlice(t), true, nil
		}
	case KindActivations:
		switch t := v.(type) {
		case []network.Activation:
			return []any{t}, false, nil
		case [][]network.Activation:
			return anySlice(t), true, nil
		}
	case KindMatrix:
		switch t := v.(type) {
		case *mat.Dense:
			return []any{t}, false, nil
		case []*mat.Dense:
			return anySlice(t), true, nil
		}
	case KindErrorFunc:
		switch t := v.(type) {
		case network.ErrorFunc:
			return []any{t}, false, nil
		case []network.ErrorFunc:
			return anySlice(t), true, nil
		}
	case KindMinimizer:
		switch t := v.(type) {
		case optim.Minimizer:
			return []any{t}, false, nil
		case []optim.Minimizer:
			return anySlice(t), true, nil
		}
	}
	return nil, false, mismatch()
}

func anySlice[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
