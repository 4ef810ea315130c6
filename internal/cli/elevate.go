package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/pipeline"
	"github.com/matzehuels/framewright/pkg/selection"
)

// elevateFlags holds the command-line overrides for pipeline options.
type elevateFlags struct {
	categories  []string
	views       []string
	offset      float64
	depthOffset float64
	template    string
	noSheets    bool
	sheetPrefix string
	output      string
	dryRun      bool
}

// elevateCommand creates the elevate command.
func (c *CLI) elevateCommand() *cobra.Command {
	var flags elevateFlags

	cmd := &cobra.Command{
		Use:   "elevate MODEL [ID...]",
		Short: "Create elevation views and sheets for elements",
		Long: `Create an elevation view (and optionally a cross-section and a plan) for
each element, put the elevation on a new sheet and write the model back.

Without ids, every selectable element in the model is processed. Elements
outside --category, or without enough geometry for a frame, are reported and
skipped; the rest of the batch still runs.`,
		Example: `  framewright elevate model.json
  framewright elevate model.json -c Walls -c Doors --views elevation,plan
  framewright elevate model.json w1 w2 --no-sheets -o out.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			opts := cfg.options()
			flags.apply(cmd, &opts)
			opts.Categories = cfg.groups().Expand(flags.categories)

			doc, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}
			ids, err := selectIDs(doc, args[1:], selection.NewFilter(opts.Categories))
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				printInfo("No elements selected")
				return nil
			}

			prog := newProgress(c.Logger)
			result, err := pipeline.NewRunner(doc, c.Logger).Elevate(cmd.Context(), ids, opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Processed %d elements", result.Stats.Requested))
			printElevateResult(result)

			if flags.dryRun || result.Stats.Succeeded == 0 {
				return nil
			}
			path, err := c.saveDocument(doc, args[0], flags.output)
			if err != nil {
				return err
			}
			printFile(path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&flags.categories, "category", "c", nil, "category tags or group labels to process")
	f.StringSliceVar(&flags.views, "views", nil, "views to create: elevation, cross_section, plan (default elevation)")
	f.Float64Var(&flags.offset, "offset", pipeline.DefaultOffset, "section box padding around width and height")
	f.Float64Var(&flags.depthOffset, "depth-offset", pipeline.DefaultDepthOffset, "section box padding along the view depth")
	f.StringVar(&flags.template, "template", "", "view template id applied to created section views")
	f.BoolVar(&flags.noSheets, "no-sheets", false, "create views only, no sheets")
	f.StringVar(&flags.sheetPrefix, "sheet-prefix", pipeline.DefaultSheetPrefix, "sheet number prefix")
	f.StringVarP(&flags.output, "output", "o", "", "output model file (default: overwrite MODEL)")
	f.BoolVar(&flags.dryRun, "dry-run", false, "run the batch without writing the model")
	_ = cmd.RegisterFlagCompletionFunc("views", completeViews)

	return cmd
}

// apply copies flags the user set onto opts, leaving config values alone
// otherwise.
func (f *elevateFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	set := cmd.Flags().Changed
	if set("views") {
		opts.Views = f.views
	}
	if set("offset") {
		opts.Offset = pipeline.Float(f.offset)
	}
	if set("depth-offset") {
		opts.DepthOffset = pipeline.Float(f.depthOffset)
	}
	if set("template") {
		opts.TemplateID = model.ID(f.template)
	}
	if set("no-sheets") {
		opts.SkipSheets = f.noSheets
	}
	if set("sheet-prefix") {
		opts.SheetPrefix = f.sheetPrefix
	}
}

func printElevateResult(r *pipeline.Result) {
	s := r.Stats
	printSuccess("Created elevations for %d of %d elements", s.Succeeded, s.Requested)
	if s.Skipped > 0 {
		printDetail("%d not selected by category", s.Skipped)
	}

	items, more := r.Head(pipeline.DefaultSummaryLimit)
	if len(items) > 0 {
		rows := make([][]string, len(items))
		for i, it := range items {
			sheet := it.SheetNumber
			if sheet == "" {
				sheet = "-"
			}
			rows[i] = []string{string(it.ElementID), it.Category, it.TypeName, it.Kind, sheet}
		}
		printTable([]string{"Element", "Category", "Type", "Placement", "Sheet"}, rows, nil)
		if more > 0 {
			printDetail("... and %d more", more)
		}
	}

	if s.Failed > 0 {
		printWarning("%d elements failed", s.Failed)
		for _, f := range r.Failures {
			printDetail("%s: %s", f.ElementID, f.Reason)
		}
	}
}
