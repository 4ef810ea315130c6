package section

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/frame"
	"github.com/matzehuels/framewright/pkg/model"
)

// maxRenameAttempts bounds the "*" suffix retries for a colliding view name.
const maxRenameAttempts = 10

// Kinds selects which views [Generator.CreateSections] creates.
type Kinds uint8

// View kinds.
const (
	Elevation Kinds = 1 << iota
	CrossSection
	Plan

	AllKinds = Elevation | CrossSection | Plan
)

var kindNames = []struct {
	kind Kinds
	name string
}{
	{Elevation, "elevation"},
	{CrossSection, "cross_section"},
	{Plan, "plan"},
}

// ParseKinds parses view kind names ("elevation", "cross_section", "plan").
func ParseKinds(names []string) (Kinds, error) {
	var k Kinds
outer:
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		for _, kn := range kindNames {
			if kn.name == n {
				k |= kn.kind
				continue outer
			}
		}
		return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown view kind %q (want elevation, cross_section or plan)", n)
	}
	return k, nil
}

// Has reports whether every kind in o is selected.
func (k Kinds) Has(o Kinds) bool { return k&o == o }

func (k Kinds) String() string {
	var parts []string
	for _, kn := range kindNames {
		if k.Has(kn.kind) {
			parts = append(parts, kn.name)
		}
	}
	return strings.Join(parts, ",")
}

// Views holds the ids of the views created for one element. Views that were
// not requested are empty.
type Views struct {
	Elevation    model.ID
	CrossSection model.ID
	Plan         model.ID
}

// Generator creates section and plan views inside a model transaction.
type Generator struct {
	Tx          model.Tx
	Logger      *log.Logger
	Offset      float64
	DepthOffset float64
}

// NewGenerator returns a generator with both offsets set to 1.
// A nil logger discards output.
func NewGenerator(tx model.Tx, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Generator{Tx: tx, Logger: logger, Offset: 1, DepthOffset: 1}
}

// CreateSections creates the selected views for f. Views are created in the
// order elevation, cross-section, plan; the first failure stops the rest.
func (g *Generator) CreateSections(f frame.Frame, base string, kinds Kinds) (Views, error) {
	var (
		out Views
		err error
	)
	if kinds.Has(Elevation) {
		if out.Elevation, err = g.CreateElevation(f, base); err != nil {
			return out, err
		}
	}
	if kinds.Has(CrossSection) {
		if out.CrossSection, err = g.CreateCrossSection(f, base); err != nil {
			return out, err
		}
	}
	if kinds.Has(Plan) {
		if out.Plan, err = g.CreatePlan(base); err != nil {
			return out, err
		}
	}
	return out, nil
}

// CreateElevation creates a section view looking along f and names it
// <base>_Elevation.
func (g *Generator) CreateElevation(f frame.Frame, base string) (model.ID, error) {
	spec, err := BuildElevation(f, g.Offset, g.DepthOffset)
	if err != nil {
		return "", err
	}
	return g.createSection(f, spec, base+"_Elevation")
}

// CreateCrossSection creates a section view looking across f and names it
// <base>_CrossSection.
func (g *Generator) CreateCrossSection(f frame.Frame, base string) (model.ID, error) {
	spec, err := BuildCrossSection(f, g.Offset, g.DepthOffset)
	if err != nil {
		return "", err
	}
	return g.createSection(f, spec, base+"_CrossSection")
}

func (g *Generator) createSection(f frame.Frame, spec Spec, name string) (model.ID, error) {
	id, err := g.Tx.CreateSectionView(spec.Box(), spec.Transform(f.Origin))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMutationFailed, err, "create section view %s", name)
	}
	g.rename(id, name)
	return id, nil
}

// CreatePlan creates a floor plan on the lowest level and names it
// <base>_Plan.
func (g *Generator) CreatePlan(base string) (model.ID, error) {
	level := model.LowestLevel(g.Tx)
	if level == nil {
		return "", errors.New(errors.ErrCodeNotFound, "document has no levels for a plan view")
	}
	id, err := g.Tx.CreatePlanView(level.ID)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMutationFailed, err, "create plan view on %s", level.ID)
	}
	g.rename(id, base+"_Plan")
	return id, nil
}

// rename sets the view name, appending "*" while the name is taken.
func (g *Generator) rename(id model.ID, name string) {
	for range maxRenameAttempts {
		err := g.Tx.SetName(id, name)
		if err == nil {
			return
		}
		if !errors.Is(err, errors.ErrCodeDuplicateName) {
			g.Logger.Warn("could not name view", "view", id, "name", name, "err", err)
			return
		}
		name += "*"
	}
	g.Logger.Warn("view name still taken after retries", "view", id, "attempts", maxRenameAttempts)
}
