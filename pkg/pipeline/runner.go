package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/frame"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/observability"
	"github.com/matzehuels/framewright/pkg/section"
	"github.com/matzehuels/framewright/pkg/selection"
)

// Runner executes batch elevation runs against a model store.
//
// The Runner is stateless except for the store and logger - it doesn't
// keep results between runs.
type Runner struct {
	Store  model.Store
	Logger *log.Logger
}

// NewRunner creates a runner for the store. A nil logger discards output.
func NewRunner(store model.Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Store: store, Logger: logger}
}

// Elevate creates views (and sheets) for every element in ids inside one
// store transaction.
//
// Elements that cannot be processed are recorded as failures and do not stop
// the batch. A cancelled context rolls the whole batch back and returns the
// context error.
func (r *Runner) Elevate(ctx context.Context, ids []model.ID, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	result := &Result{Stats: Stats{Requested: len(ids)}}
	observability.Pipeline().OnBatchStart(ctx, len(ids))

	err := r.Store.Transact(transactionName, func(tx model.Tx) error {
		b := &batch{
			opts:   &opts,
			tx:     tx,
			filter: selection.NewFilter(opts.Categories),
			gen:    newGenerator(tx, &opts),
			logger: opts.Logger,
		}
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			b.process(ctx, id, result)
		}
		return nil
	})

	result.Stats.Succeeded = len(result.Items)
	result.Stats.Failed = len(result.Failures)
	result.Stats.Skipped = len(result.Skipped)
	result.Stats.Duration = time.Since(start)
	observability.Pipeline().OnBatchComplete(ctx, result.Stats.Succeeded, result.Stats.Failed, result.Stats.Duration, err)

	if err != nil {
		r.Logger.Warn("batch rolled back", "err", err)
		return nil, err
	}

	r.Logger.Info("created elevations",
		"succeeded", result.Stats.Succeeded,
		"failed", result.Stats.Failed,
		"skipped", result.Stats.Skipped,
		"duration", result.Stats.Duration)
	return result, nil
}

// applyLogger uses the runner's logger unless the options carry their own.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func newGenerator(tx model.Tx, opts *Options) *section.Generator {
	g := section.NewGenerator(tx, opts.Logger)
	g.Offset = *opts.Offset
	g.DepthOffset = *opts.DepthOffset
	return g
}

// =============================================================================
// Per-element Processing
// =============================================================================

// batch carries the state shared by every element of one run.
type batch struct {
	opts   *Options
	tx     model.Tx
	filter *selection.Filter
	gen    *section.Generator
	logger *log.Logger
}

func (b *batch) process(ctx context.Context, id model.ID, result *Result) {
	e, err := b.tx.Element(id)
	if err != nil {
		b.fail(ctx, id, "", err, result)
		return
	}
	if !b.filter.Allow(e) {
		b.logger.Debug("element not selected", "id", id, "category", e.Category)
		result.Skipped = append(result.Skipped, id)
		return
	}

	item, err := b.elevate(e)
	if err != nil {
		b.fail(ctx, id, item.Kind, err, result)
		return
	}
	result.Items = append(result.Items, item)
	observability.Pipeline().OnElementComplete(ctx, string(id), item.Kind, nil)
}

func (b *batch) fail(ctx context.Context, id model.ID, kind string, err error, result *Result) {
	b.logger.Warn("skipping element", "id", id, "err", err)
	result.Failures = append(result.Failures, Failure{
		ElementID: id,
		Code:      errors.GetCode(err),
		Reason:    errors.UserMessage(err),
	})
	observability.Pipeline().OnElementComplete(ctx, string(id), kind, err)
}

func (b *batch) elevate(e *model.Element) (Item, error) {
	typeName, category := names(b.tx, e)
	placement := frame.Classify(e, b.tx)
	item := Item{
		ElementID: e.ID,
		Category:  category,
		TypeName:  typeName,
		Kind:      placement.Kind().String(),
	}

	f := placement.Frame()
	if !f.HasDirection() {
		return item, errors.New(errors.ErrCodeInvalidFrame, "no usable frame for %s (%s)", e.ID, item.Kind)
	}
	b.logger.Debug("inferred frame", "id", e.ID, "kind", item.Kind, "frame", f)

	views, err := b.gen.CreateSections(f, fmt.Sprintf("%s_%s", typeName, e.ID), b.opts.kinds)
	item.Views = views
	if err != nil {
		return item, err
	}
	if err := b.applyTemplate(views); err != nil {
		return item, err
	}

	if !b.opts.SkipSheets {
		item.SheetID, item.SheetNumber = b.createSheet(item)
	}
	return item, nil
}

func (b *batch) applyTemplate(views section.Views) error {
	if b.opts.TemplateID == "" {
		return nil
	}
	for _, v := range []model.ID{views.Elevation, views.CrossSection} {
		if v == "" {
			continue
		}
		if err := b.tx.ApplyTemplate(v, b.opts.TemplateID); err != nil {
			return errors.Wrap(errors.ErrCodeMutationFailed, err, "apply template %s to %s", b.opts.TemplateID, v)
		}
	}
	return nil
}

// createSheet puts the item's primary view on a new sheet. Sheet problems
// are logged and leave the views in place.
func (b *batch) createSheet(item Item) (model.ID, string) {
	view := primaryView(item.Views)
	if view == "" {
		return "", ""
	}
	titleBlock := model.DefaultTitleBlock(b.tx)
	if titleBlock == "" {
		b.logger.Warn("no title block in document, sheet created without one", "id", item.ElementID)
	}
	sheet, err := b.tx.CreateSheet(titleBlock)
	if err != nil {
		b.logger.Warn("could not create sheet", "id", item.ElementID, "err", err)
		return "", ""
	}
	if _, err := b.tx.PlaceView(sheet, view, *b.opts.SheetPosition); err != nil {
		b.logger.Warn("could not place view on sheet", "view", view, "sheet", sheet, "err", err)
	}

	number := fmt.Sprintf("%s_%s_%s", b.opts.SheetPrefix, item.TypeName, item.ElementID)
	name := item.Category + " - Elevation"
	for range maxSheetNumberAttempts {
		err = b.tx.SetSheetNumber(sheet, number, name)
		if err == nil {
			return sheet, number
		}
		if !errors.Is(err, errors.ErrCodeDuplicateName) {
			break
		}
		number += "*"
	}
	b.logger.Warn("could not number sheet", "sheet", sheet, "err", err)
	return sheet, ""
}

// primaryView is the view placed on the sheet: the elevation when present.
func primaryView(v section.Views) model.ID {
	switch {
	case v.Elevation != "":
		return v.Elevation
	case v.CrossSection != "":
		return v.CrossSection
	}
	return v.Plan
}

// names returns the type name and category of e, falling back to
// UnknownName.
func names(r model.Reader, e *model.Element) (typeName, category string) {
	typeName, category = UnknownName, UnknownName
	if t := model.TypeOf(r, e); t != nil && t.Name != "" {
		typeName = t.Name
	}
	if e.Category != "" {
		category = e.Category
	}
	return typeName, category
}
