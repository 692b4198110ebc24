package network

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ErrConstruction is the sentinel wrapped by every network construction
// failure. Use errors.Is to detect it regardless of the concrete reason.
var ErrConstruction = errors.New("network: invalid architecture")

// ConstructionError reports an invalid architecture parameter passed to New.
type ConstructionError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("network: invalid architecture: %s", e.Reason)
}

// Unwrap returns ErrConstruction.
func (e *ConstructionError) Unwrap() error { return ErrConstruction }

// Settings describes the architecture of a feedforward network as
// resolved from one suite: layer widths, bias, and per-layer activations.
type Settings struct {
	InputUnits  int
	OutputUnits int
	HiddenUnits int
	Bias        bool

	// Activations holds one activation per layer, input layer included.
	// A network with one hidden layer therefore needs three. Nil selects
	// the default: Identity for the input layer, Sigmoid elsewhere.
	Activations []Activation
}

// Network is a fully connected feedforward network with a single hidden
// layer. Weight matrix i maps layer i to layer i+1 and has shape
// [sizes[i+1], sizes[i]+1] when bias is enabled ([sizes[i+1], sizes[i]]
// otherwise). Data is column-major: one column per example.
type Network struct {
	sizes       []int
	bias        bool
	activations []Activation
	weights     []*mat.Dense
}

// New constructs a Network from the given settings.
//
// Weights are initialized with Xavier/Glorot uniform values drawn from
// the global math/rand source; call ResetWeights with an explicit
// *rand.Rand for reproducible initialization.
//
// Returns a *ConstructionError (wrapping ErrConstruction) when a layer
// width is not positive, the activation count does not match the layer
// count, or an activation is nil.
func New(cfg Settings) (*Network, error) {
	if cfg.InputUnits < 1 {
		return nil, &ConstructionError{Reason: fmt.Sprintf("input units must be positive, got %d", cfg.InputUnits)}
	}
	if cfg.HiddenUnits < 1 {
		return nil, &ConstructionError{Reason: fmt.Sprintf("hidden units must be positive, got %d", cfg.HiddenUnits)}
	}
	if cfg.OutputUnits < 1 {
		return nil, &ConstructionError{Reason: fmt.Sprintf("output units must be positive, got %d", cfg.OutputUnits)}
	}

	sizes := []int{cfg.InputUnits, cfg.HiddenUnits, cfg.OutputUnits}

	acts := cfg.Activations
	if acts == nil {
		acts = make([]Activation, len(sizes))
		acts[0] = Identity{}
		for i := 1; i < len(acts); i++ {
			acts[i] = Sigmoid{}
		}
	}
	if len(acts) != len(sizes) {
		return nil, &ConstructionError{
			Reason: fmt.Sprintf("want %d activation functions (one per layer), got %d", len(sizes), len(acts)),
		}
	}
	for i, fn := range acts {
		if fn == nil {
			return nil, &ConstructionError{Reason: fmt.Sprintf("activation function %d is nil", i)}
		}
	}

	n := &Network{
		sizes:       sizes,
		bias:        cfg.Bias,
		activations: append([]Activation(nil), acts...),
	}
	n.weights = make([]*mat.Dense, len(sizes)-1)
	for i := range n.weights {
		rows, cols := n.weightDims(i)
		n.weights[i] = mat.NewDense(rows, cols, nil)
	}
	n.ResetWeights(nil)
	return n, nil
}

func (n *Network) weightDims(i int) (rows, cols int) {
	cols = n.sizes[i]
	if n.bias {
		cols++
	}
	return n.sizes[i+1], cols
}

// Sizes returns the layer widths, input layer first.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Bias reports whether the network prepends a constant bias row.
func (n *Network) Bias() bool { return n.bias }

// Activations returns the per-layer activation functions.
func (n *Network) Activations() []Activation {
	return append([]Activation(nil), n.activations...)
}

// Weights returns the weight matrices, layer order. The returned
// matrices are the network's own: mutating them mutates the network.
func (n *Network) Weights() []*mat.Dense { return n.weights }

// NumWeights returns the total number of weight entries across all layers.
func (n *Network) NumWeights() int {
	var total int
	for i := range n.weights {
		r, c := n.weights[i].Dims()
		total += r * c
	}
	return total
}

// WeightDims returns the [rows, cols] shape of every weight matrix.
func (n *Network) WeightDims() [][2]int {
	dims := make([][2]int, len(n.weights))
	for i := range n.weights {
		r, c := n.weights[i].Dims()
		dims[i] = [2]int{r, c}
	}
	return dims
}

// SetWeights replaces the network's weights. The shapes must match
// WeightDims exactly.
func (n *Network) SetWeights(ws []*mat.Dense) error {
	if len(ws) != len(n.weights) {
		return fmt.Errorf("network: want %d weight matrices, got %d", len(n.weights), len(ws))
	}
	for i, w := range ws {
		wr, wc := w.Dims()
		r, c := n.weights[i].Dims()
		if wr != r || wc != c {
			return fmt.Errorf("network: weight %d shape mismatch: want %dx%d, got %dx%d", i, r, c, wr, wc)
		}
	}
	for i, w := range ws {
		n.weights[i].Copy(w)
	}
	return nil
}

// ResetWeights reinitializes every weight with Xavier/Glorot uniform
// values: U(-sqrt(6/(fanIn+fanOut)), +sqrt(6/(fanIn+fanOut))).
//
// A nil rng draws from the global math/rand source.
func (n *Network) ResetWeights(rng *rand.Rand) {
	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}
	for i := range n.weights {
		r, c := n.weights[i].Dims()
		bound := math.Sqrt(6.0 / float64(r+c))
		for row := 0; row < r; row++ {
			for col := 0; col < c; col++ {
				n.weights[i].Set(row, col, (uniform()*2-1)*bound)
			}
		}
	}
}

// Forward runs forward propagation over x, whose columns are examples.
//
// It returns the per-layer pre-activations zs and activations as, both
// indexed by layer. zs[0] is nil: the input layer has no pre-activation,
// and as[0] is the input activation applied directly to x. The bias row
// is not included in the returned activations; AddBiasRow reconstructs
// the augmented form when needed.
//
// Panics if x does not have InputUnits rows, as that is a programmer
// error rather than a data error.
func (n *Network) Forward(x mat.Matrix) (zs, as []*mat.Dense) {
	r, _ := x.Dims()
	if r != n.sizes[0] {
		panic(fmt.Sprintf("network: Forward expects %d input rows, got %d", n.sizes[0], r))
	}

	zs = make([]*mat.Dense, len(n.sizes))
	as = make([]*mat.Dense, len(n.sizes))
	as[0] = n.activations[0].Apply(x)

	for i, w := range n.weights {
		in := mat.Matrix(as[i])
		if n.bias {
			in = AddBiasRow(in)
		}
		z := &mat.Dense{}
		z.Mul(w, in)
		zs[i+1] = z
		as[i+1] = n.activations[i+1].Apply(z)
	}
	return zs, as
}

// Predict returns the network's hypothesis for x: the activation of the
// final layer, one column per example.
func (n *Network) Predict(x mat.Matrix) *mat.Dense {
	_, as := n.Forward(x)
	return as[len(as)-1]
}

// AddBiasRow returns a copy of a with a constant row of ones prepended,
// the augmented activation form used by bias-enabled networks.
func AddBiasRow(a mat.Matrix) *mat.Dense {
	r, c := a.Dims()
	out := mat.NewDense(r+1, c, nil)
	for j := 0; j < c; j++ {
		out.Set(0, j, 1)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i+1, j, a.At(i, j))
		}
	}
	return out
}
