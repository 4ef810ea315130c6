// Package selection decides which elements a batch run may process.
//
// Selections are expressed as tags. A plain tag names a category ("Walls",
// "Doors"); a tag with the "class:" prefix names an element class
// ("class:family_instance"). Named groups bundle several tags under one
// label and are flattened with [Groups.Expand] before building a [Filter].
//
// View-specific elements (annotations, detail items) are never selected.
package selection

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/framewright/pkg/model"
)

// ClassPrefix marks a tag that names an element class instead of a category.
const ClassPrefix = "class:"

// Groups maps a group label to the tags it stands for.
type Groups map[string][]string

// DefaultGroups returns the built-in category groups.
func DefaultGroups() Groups {
	return Groups{
		"Walls":                 {"Walls"},
		"Curtain Walls":         {"Walls"},
		"Windows":               {"Windows"},
		"Doors":                 {"Doors"},
		"Columns":               {"Columns", "Structural Columns"},
		"Beams/Framing":         {"Structural Framing"},
		"Furniture":             {"Furniture", "Furniture Systems"},
		"Plumbing Fixtures":     {"Plumbing Fixtures"},
		"Generic Models":        {"Generic Models"},
		"Casework":              {"Casework"},
		"Lighting Fixtures":     {"Lighting Fixtures"},
		"Mass":                  {"Mass"},
		"Parking":               {"Parking"},
		"All Loadable Families": {ClassPrefix + string(model.ClassFamilyInstance)},
		"Electrical": {
			"Electrical Fixtures",
			"Electrical Equipment",
			"Electrical Circuits",
		},
	}
}

// Merge returns a copy of g with the groups of o added, replacing groups
// of the same label.
func (g Groups) Merge(o Groups) Groups {
	out := maps.Clone(g)
	if out == nil {
		out = Groups{}
	}
	maps.Copy(out, o)
	return out
}

// Labels returns the group labels in sorted order.
func (g Groups) Labels() []string {
	return slices.Sorted(maps.Keys(g))
}

// Expand flattens names into tags. A name matching a group label (ignoring
// case) is replaced by the group's tags; any other name is kept as a tag.
// Duplicates are dropped, first occurrence wins.
func (g Groups) Expand(names []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(tag string) {
		key := strings.ToLower(tag)
		if !seen[key] {
			seen[key] = true
			out = append(out, tag)
		}
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if tags, ok := g.lookup(n); ok {
			for _, t := range tags {
				add(t)
			}
			continue
		}
		add(n)
	}
	return out
}

func (g Groups) lookup(name string) ([]string, bool) {
	if tags, ok := g[name]; ok {
		return tags, true
	}
	for label, tags := range g {
		if strings.EqualFold(label, name) {
			return tags, true
		}
	}
	return nil, false
}

// Filter allows elements by category or class.
type Filter struct {
	categories map[string]bool
	classes    map[model.Class]bool
}

// NewFilter builds a filter from tags. A filter without tags allows every
// element that is not view specific.
func NewFilter(tags []string) *Filter {
	f := &Filter{categories: make(map[string]bool), classes: make(map[model.Class]bool)}
	for _, t := range tags {
		if class, ok := strings.CutPrefix(t, ClassPrefix); ok {
			f.classes[model.Class(class)] = true
			continue
		}
		f.categories[strings.ToLower(t)] = true
	}
	return f
}

// Empty reports whether the filter has no tags.
func (f *Filter) Empty() bool {
	return len(f.categories) == 0 && len(f.classes) == 0
}

// Allow reports whether e may be selected.
func (f *Filter) Allow(e *model.Element) bool {
	if e == nil || e.ViewSpecific {
		return false
	}
	if f.Empty() {
		return true
	}
	if f.classes[e.Class] {
		return true
	}
	return e.Category != "" && f.categories[strings.ToLower(e.Category)]
}
