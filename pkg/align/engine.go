package align

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/observability"
)

// transactionName labels the rotation in the model store.
const transactionName = "Make Parallel"

// Apply rotates plan.Proxy in one store transaction. Any store failure
// rolls the transaction back and is reported as MUTATION_FAILED.
func Apply(plan Plan, store model.Store) error {
	axis := geom.RotationAxis(plan.AxisOrigin, plan.AxisDirection)
	err := store.Transact(transactionName, func(tx model.Tx) error {
		return tx.Rotate(plan.Proxy, axis, plan.Angle)
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeMutationFailed, err, "rotate %s", plan.Proxy)
	}
	return nil
}

// Engine runs the whole alignment workflow for element ids: lookup,
// planning and applying, with logging and hooks.
type Engine struct {
	Logger *log.Logger
}

// NewEngine creates an engine. A nil logger discards output.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Engine{Logger: logger}
}

// Result reports a finished alignment.
type Result struct {
	Reference model.ID      `json:"reference"`
	Target    model.ID      `json:"target"`
	Plan      Plan          `json:"plan"`
	Degrees   float64       `json:"degrees"`
	Duration  time.Duration `json:"duration"`
}

// Align makes target parallel to reference. Nothing is mutated unless the
// plan succeeds; a failed rotation leaves the store unchanged.
func (e *Engine) Align(ctx context.Context, store model.Store, reference, target model.ID) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, id := range []model.ID{reference, target} {
		if err := errors.ValidateElementID(string(id)); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	plan, err := e.plan(store, reference, target)
	observability.Align().OnPlan(ctx, string(reference), string(target), plan.Angle, err)
	if err != nil {
		e.Logger.Debug("alignment plan failed", "reference", reference, "target", target, "err", err)
		return nil, err
	}
	e.Logger.Debug("planned alignment", "proxy", plan.Proxy, "angle", plan.Angle, "axis", plan.AxisDirection)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	applyStart := time.Now()
	err = Apply(plan, store)
	observability.Align().OnApply(ctx, string(plan.Proxy), time.Since(applyStart), err)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Reference: reference,
		Target:    target,
		Plan:      plan,
		Degrees:   plan.Degrees(),
		Duration:  time.Since(start),
	}
	e.Logger.Info("elements are now parallel", "target", target, "degrees", res.Degrees)
	return res, nil
}

func (e *Engine) plan(r model.Reader, reference, target model.ID) (Plan, error) {
	ref, err := r.Element(reference)
	if err != nil {
		return Plan{}, err
	}
	tgt, err := r.Element(target)
	if err != nil {
		return Plan{}, err
	}
	return NewPlan(ref, tgt, r)
}
