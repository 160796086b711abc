package fill

import (
	"errors"

	"github.com/erraggy/oasfill/fillerrors"
	"github.com/erraggy/oasfill/repair"
	"github.com/erraggy/oasfill/spec"
)

// Expander fills the parameters of operations and expands them across
// caller-supplied override values.
//
// An Expander is synchronous and keeps no state across calls; the bound
// document is the only shared data, and it is read-only for the duration of
// a call.
type Expander struct {
	// Repairer normalizes parameter declarations before filling.
	// Defaults to repair.New() (all repairs enabled).
	Repairer *repair.Repairer
	// Synthesizer produces baseline fill values.
	// Defaults to NewSynthesizer over the bound document.
	Synthesizer *Synthesizer
	// Logger receives debug traces. If nil, logging is disabled.
	Logger spec.Logger
}

// NewExpander creates an expander bound to a document with default repair
// and synthesis behavior.
func NewExpander(doc Dereferencer) *Expander {
	return &Expander{
		Repairer:    repair.New(),
		Synthesizer: NewSynthesizer(doc),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (e *Expander) log() spec.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return spec.NopLogger{}
}

// Expand fills the operation's parameters and expands it into one operation
// per combination of override values.
//
// The pipeline is linear and fully deterministic given identical inputs:
//
//  1. the repair passes run once over the operation's parameter specs
//  2. the operation is cloned; the clone owns its fill-state and shares
//     the document
//  3. every eligible parameter is filled in declared order: the author
//     default when one is declared, a synthesized value otherwise. Optional
//     parameters are skipped when includeOptional is false, except headers
//     carrying a default or enum, which the client would normally send
//  4. override values are folded in, again in declared order: a single
//     value overwrites the fill on every operation accumulated so far,
//     multiple values multiply the accumulated operations into one clone
//     per (operation, value) pair
//
// The final operation count is the product of the override-list sizes, in
// declaration order. Either a complete operation sequence is returned or an
// error is - there is no partial-success mode, and retrying a failed call
// reproduces the same failure.
func (e *Expander) Expand(op *spec.Operation, includeOptional bool, values *Values) ([]*spec.Operation, error) {
	log := e.log().With("path", op.Path, "method", op.Method)

	repairs := e.Repairer.RepairOperation(op)
	if len(repairs) > 0 {
		log.Debug("repaired parameter declarations", "repairs", len(repairs))
	}

	clone := op.Clone()
	for _, p := range clone.Params {
		if e.shouldSkip(p, includeOptional) {
			continue
		}
		if err := e.fillParameter(p); err != nil {
			return nil, err
		}
	}

	ops := []*spec.Operation{clone}
	if values == nil || values.IsEmpty() {
		return ops, nil
	}

	for _, p := range clone.Params {
		if e.shouldSkip(p, includeOptional) {
			continue
		}
		candidates := values.Get(op.Path, p.Name)
		if len(candidates) == 0 {
			continue
		}
		ops = applyValues(ops, p.Name, candidates)
	}

	log.Debug("expanded operation", "operations", len(ops))
	return ops, nil
}

// shouldSkip reports whether a parameter is left unfilled. Headers carrying
// a default or enum are always filled, regardless of the optional-fill flag.
func (e *Expander) shouldSkip(p *spec.Parameter, includeOptional bool) bool {
	if p.IsHeader() && p.HasDefaultOrEnum() {
		return false
	}
	return !p.Required && !includeOptional
}

// fillParameter resolves one parameter's fill value. The author default
// short-circuits synthesis entirely.
func (e *Expander) fillParameter(p *spec.Parameter) error {
	if def := p.Default(); def != nil {
		p.SetFill(def)
		return nil
	}

	value, err := e.Synthesizer.Synthesize(p.Spec)
	if err != nil {
		// Name the parameter in classification failures surfaced from
		// anonymous nested specs.
		var shapeErr *fillerrors.ShapeError
		if errors.As(err, &shapeErr) && shapeErr.Parameter == "" {
			shapeErr.Parameter = p.Name
		}
		return err
	}
	p.SetFill(value)
	return nil
}

// applyValues assigns override values for one parameter across the
// accumulated operations. A single value overwrites fills in place;
// multiple values produce the cartesian product, preserving accumulated
// operation order then value order.
func applyValues(ops []*spec.Operation, name string, values []any) []*spec.Operation {
	if len(values) == 0 {
		return ops
	}

	if len(values) == 1 {
		for _, op := range ops {
			op.Param(name).SetFill(values[0])
		}
		return ops
	}

	extended := make([]*spec.Operation, 0, len(ops)*len(values))
	for _, op := range ops {
		for _, value := range values {
			clone := op.Clone()
			clone.Param(name).SetFill(value)
			extended = append(extended, clone)
		}
	}
	return extended
}
