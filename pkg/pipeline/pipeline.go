// Package pipeline provides the batch elevation workflow for framewright.
//
// This package implements the complete select → infer → create views →
// create sheet workflow that the CLI runs over a set of elements. By
// centralizing this logic, every entry point processes elements the same
// way and reports the same results.
//
// # Architecture
//
// A batch runs inside one model store transaction. For each element:
//
//  1. Select: the [selection.Filter] built from Options.Categories decides
//     whether the element is processed at all
//  2. Infer: [frame.Classify] resolves the placement and computes the frame
//  3. Views: a [section.Generator] creates the requested views and applies
//     the view template
//  4. Sheet: a sheet is created with the default title block, numbered
//     <prefix>_<type>_<id> and the elevation is placed on it
//
// A failing element is recorded in the result and the batch moves on. Only
// a cancelled context or a store-level failure rolls the batch back.
//
// # Usage
//
//	runner := pipeline.NewRunner(store, logger)
//	opts := pipeline.Options{
//	    Categories: selection.DefaultGroups().Expand([]string{"Walls"}),
//	    Views:      []string{"elevation", "plan"},
//	}
//	result, err := runner.Elevate(ctx, ids, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Succeeded, "elevations")
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/section"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultOffset pads the section box around the element's width and height.
	DefaultOffset = 1.0

	// DefaultDepthOffset pads the section box along the view depth.
	DefaultDepthOffset = 1.0

	// DefaultSheetPrefix starts every generated sheet number.
	DefaultSheetPrefix = "EL"

	// DefaultSummaryLimit is how many items a result summary lists.
	DefaultSummaryLimit = 10

	// UnknownName stands in for a missing type name or category.
	UnknownName = "Unknown"

	// maxSheetNumberAttempts bounds the "*" suffix retries for sheet numbers.
	maxSheetNumberAttempts = 10

	// transactionName labels the batch in the model store.
	transactionName = "AutoElevation - Create Elevation Views"
)

// DefaultSheetPosition is where the elevation is placed on its sheet.
var DefaultSheetPosition = geom.Vec(-0.85, 0.65, 0)

// DefaultViews are the views created when Options.Views is empty.
var DefaultViews = []string{"elevation"}

// =============================================================================
// Options - Batch Configuration
// =============================================================================

// Options contains all configuration for a batch elevation run.
// This struct supports JSON serialization so runs can be described in files.
type Options struct {
	// Section box padding. Nil selects the default; zero is a valid padding.
	Offset      *float64 `json:"offset,omitempty"`
	DepthOffset *float64 `json:"depth_offset,omitempty"`

	// Views lists the views to create: elevation, cross_section, plan.
	Views []string `json:"views,omitempty"`

	// TemplateID is applied to every created section view when set.
	TemplateID model.ID `json:"template_id,omitempty"`

	// Categories are selection tags, already expanded from groups.
	// Empty selects every element that is not view specific.
	Categories []string `json:"categories,omitempty"`

	// Sheet options
	SkipSheets    bool          `json:"skip_sheets,omitempty"`
	SheetPrefix   string        `json:"sheet_prefix,omitempty"`
	SheetPosition *geom.Vector3 `json:"sheet_position,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	kinds     section.Kinds
	validated bool
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills every unset option with its default.
func (o *Options) SetDefaults() {
	if o.Offset == nil {
		o.Offset = Float(DefaultOffset)
	}
	if o.DepthOffset == nil {
		o.DepthOffset = Float(DefaultDepthOffset)
	}
	if len(o.Views) == 0 {
		o.Views = DefaultViews
	}
	if o.SheetPrefix == "" {
		o.SheetPrefix = DefaultSheetPrefix
	}
	if o.SheetPosition == nil {
		pos := DefaultSheetPosition
		o.SheetPosition = &pos
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks every option.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := errors.ValidateOffset("offset", *o.Offset); err != nil {
		return err
	}
	if err := errors.ValidateOffset("depth offset", *o.DepthOffset); err != nil {
		return err
	}
	if err := errors.ValidateName(o.SheetPrefix); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "sheet prefix")
	}
	kinds, err := section.ParseKinds(o.Views)
	if err != nil {
		return err
	}
	if kinds == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no views selected")
	}
	o.kinds = kinds
	o.validated = true
	return nil
}

// Float returns a pointer to v, for setting offsets.
func Float(v float64) *float64 { return &v }

// Kinds returns the parsed view kinds. It is zero until
// ValidateAndSetDefaults succeeded.
func (o *Options) Kinds() section.Kinds { return o.kinds }

// =============================================================================
// Results
// =============================================================================

// Item records one processed element.
type Item struct {
	ElementID   model.ID      `json:"element_id"`
	Category    string        `json:"category"`
	TypeName    string        `json:"type_name"`
	Kind        string        `json:"kind"`
	Views       section.Views `json:"views"`
	SheetID     model.ID      `json:"sheet_id,omitempty"`
	SheetNumber string        `json:"sheet_number,omitempty"`
}

// Failure records an element that could not be processed.
type Failure struct {
	ElementID model.ID    `json:"element_id"`
	Code      errors.Code `json:"code,omitempty"`
	Reason    string      `json:"reason"`
}

// Result contains the outcome of a batch run.
type Result struct {
	// Items lists the processed elements in request order.
	Items []Item

	// Failures lists the elements that could not be processed.
	Failures []Failure

	// Skipped lists elements rejected by the selection filter.
	Skipped []model.ID

	// Stats contains counts and timing.
	Stats Stats
}

// Stats contains batch execution statistics.
type Stats struct {
	Requested int
	Succeeded int
	Failed    int
	Skipped   int
	Duration  time.Duration
}

// Head returns at most n items and the number of items left out.
func (r *Result) Head(n int) ([]Item, int) {
	if n < 0 || len(r.Items) <= n {
		return r.Items, 0
	}
	return r.Items[:n], len(r.Items) - n
}
