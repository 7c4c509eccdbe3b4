package geohash

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
)

// Options tune the batch and enumeration functions of an Engine
type Options struct {
	// Upper bound on the number of cells GridProperties and BoundingBoxes accept
	MaxCells uint64 `default:"16777216" validate:"min=1" json:"maxCells"`
	// Number of goroutines for batch calls. 0 means all CPUs, 1 disables fan-out.
	Workers int `validate:"min=0" json:"workers"`
	// Batches smaller than this run inline
	MinChunk int `default:"4096" validate:"min=1" json:"minChunk"`
	// Make Where fail when a code does not occupy a single rectangular block
	CheckContiguity bool `json:"checkContiguity"`
}

func DefaultOptions() Options {
	var o Options
	defaults.MustSet(&o)
	return o
}

func (o *Options) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func (o *Options) UnmarshalJSON(data []byte) error {
	err := defaults.Set(o)
	if err != nil {
		return err
	}

	type plain Options // no UnmarshalJSON, no recursion
	unknown, err := marshmallow.Unmarshal(data, (*plain)(o), marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		keys := make([]string, 0, len(unknown))
		for k := range unknown {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return fmt.Errorf("unknown options: %v", keys)
	}
	return o.Validate()
}

func (o *Options) workers() int {
	if o.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// Engine runs the batch and grid operations with a fixed set of Options.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// New fills in defaults for unset options and validates them
func New(opts Options) (*Engine, error) {
	if err := defaults.Set(&opts); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: opts}, nil
}

func MustNew(opts Options) *Engine {
	e, err := New(opts)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Options() Options {
	return e.opts
}

var defaultEngine = MustNew(DefaultOptions())
