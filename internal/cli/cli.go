// Package cli implements the framewright command-line interface.
//
// Commands work on model documents stored as JSON files (see
// [memory.Load]). Commands that change the model write the document back,
// either in place or to the path given with --output.
//
// # Commands
//
// The main commands are:
//   - frame: Print the inferred local frame of elements
//   - elevate: Create elevation views and sheets for a batch of elements
//   - align: Rotate one element parallel to another
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Defaults for elevate (offsets, views, sheet numbering, category groups)
// can be set in a TOML file, read from --config or from
// $XDG_CONFIG_HOME/framewright/config.toml. Flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framewright/pkg/buildinfo"
	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/model/memory"
	"github.com/matzehuels/framewright/pkg/selection"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "framewright"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// selectableClasses are the element classes commands pick up when no ids
// are given. Types, views and sheet furniture are never selected.
var selectableClasses = []model.Class{
	model.ClassWall,
	model.ClassFamilyInstance,
	model.ClassGrid,
	model.ClassReferencePlane,
	model.ClassViewer,
	model.ClassGeneric,
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Framewright derives element frames and creates elevations",
		Long:         `Framewright infers a local frame (origin, direction, extents) for building model elements and uses it to create elevation, cross-section and plan views, put them on sheets, and make elements parallel to each other.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/framewright/config.toml)")

	// Register all subcommands
	root.AddCommand(c.frameCommand())
	root.AddCommand(c.elevateCommand())
	root.AddCommand(c.alignCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// PrintError reports a failed command to the user without the error code.
func PrintError(err error) {
	printError("%s", errors.UserMessage(err))
}

// =============================================================================
// Document Helpers
// =============================================================================

// loadDocument reads a model document and logs its size.
func (c *CLI) loadDocument(path string) (*memory.Store, error) {
	doc, err := memory.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded model", "path", path, "elements", doc.Len())
	return doc, nil
}

// saveDocument writes doc to output, or back to input when output is empty.
func (c *CLI) saveDocument(doc *memory.Store, input, output string) (string, error) {
	path := output
	if path == "" {
		path = input
	}
	if err := doc.Save(path); err != nil {
		return "", err
	}
	c.Logger.Debug("saved model", "path", path, "elements", doc.Len())
	return path, nil
}

// selectIDs returns ids when given, after validating them. Otherwise it
// returns every selectable element in the document that the filter allows.
func selectIDs(doc *memory.Store, ids []string, filter *selection.Filter) ([]model.ID, error) {
	if len(ids) > 0 {
		out := make([]model.ID, 0, len(ids))
		for _, id := range ids {
			if err := errors.ValidateElementID(id); err != nil {
				return nil, err
			}
			out = append(out, model.ID(id))
		}
		return out, nil
	}

	var out []model.ID
	for _, e := range doc.All() {
		if slices.Contains(selectableClasses, e.Class) && filter.Allow(e) {
			out = append(out, e.ID)
		}
	}
	return out, nil
}
