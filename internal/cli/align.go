package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framewright/pkg/align"
	"github.com/matzehuels/framewright/pkg/model"
)

// alignCommand creates the align command.
func (c *CLI) alignCommand() *cobra.Command {
	var (
		output string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "align MODEL REFERENCE TARGET",
		Short: "Rotate TARGET so it is parallel to REFERENCE",
		Long: `Rotate the target element about a vertical axis through its origin so its
direction is parallel to the reference element, using the smallest rotation.

Targets that are views are turned through the element that carries them
(the elevation marker for elevations).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}

			res, err := align.NewEngine(c.Logger).Align(cmd.Context(), doc, model.ID(args[1]), model.ID(args[2]))
			if err != nil {
				return err
			}

			printSuccess("Elements are now parallel")
			printKeyValue("Rotated", fmt.Sprintf("%.2f°", res.Degrees))
			if res.Plan.Proxy != res.Target {
				printKeyValue("Through", string(res.Plan.Proxy))
			}

			if dryRun {
				return nil
			}
			path, err := c.saveDocument(doc, args[0], output)
			if err != nil {
				return err
			}
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output model file (default: overwrite MODEL)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and apply in memory without writing the model")

	return cmd
}
