package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framewright/pkg/frame"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/selection"
)

// frameRow is one line of `framewright frame` output.
type frameRow struct {
	ID       model.ID    `json:"id"`
	Category string      `json:"category,omitempty"`
	Kind     string      `json:"kind"`
	Frame    frame.Frame `json:"frame"`
}

// frameCommand creates the frame command.
func (c *CLI) frameCommand() *cobra.Command {
	var (
		categories []string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "frame MODEL [ID...]",
		Short: "Print the inferred local frame of elements",
		Long: `Print the origin, direction and extents inferred for elements.

Without ids, every wall, family instance, grid, reference plane, viewer and
generic element is listed, optionally restricted with --category.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			doc, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}

			filter := selection.NewFilter(cfg.groups().Expand(categories))
			ids, err := selectIDs(doc, args[1:], filter)
			if err != nil {
				return err
			}

			rows := make([]frameRow, 0, len(ids))
			for _, id := range ids {
				e, err := doc.Element(id)
				if err != nil {
					return err
				}
				p := frame.Classify(e, doc)
				rows = append(rows, frameRow{ID: id, Category: e.Category, Kind: p.Kind().String(), Frame: p.Frame()})
			}
			c.Logger.Debug("inferred frames", "elements", len(rows))

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			printFrames(rows)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "category tags or group labels to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print frames as JSON")

	return cmd
}

func printFrames(rows []frameRow) {
	if len(rows) == 0 {
		printInfo("No elements selected")
		return
	}
	table := make([][]string, len(rows))
	for i, r := range rows {
		f := r.Frame
		if !f.Valid {
			table[i] = []string{string(r.ID), r.Kind, "-", "-", "-", "-", "-"}
			continue
		}
		table[i] = []string{
			string(r.ID),
			r.Kind,
			f.Origin.String(),
			f.Direction.String(),
			fmt.Sprintf("%.3g", f.Width),
			fmt.Sprintf("%.3g", f.Height),
			fmt.Sprintf("%.3g", f.Depth),
		}
	}
	printTable(
		[]string{"Element", "Placement", "Origin", "Direction", "W", "H", "D"},
		table,
		func(row int) bool { return !rows[row].Frame.Valid },
	)
}
