package cli

import (
	"bytes"
	"io"
	"math"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/model/memory"
)

// writeModel saves a small document with two walls and returns its path.
func writeModel(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	box := func(minX, minY, maxX, maxY float64) *geom.BoundingBox {
		return &geom.BoundingBox{Min: geom.Vec(minX, minY, 0), Max: geom.Vec(maxX, maxY, 3)}
	}
	s, err := memory.New([]*model.Element{
		{ID: "T1", Class: model.ClassElementType, Name: "Basic Wall"},
		{ID: "w1", Class: model.ClassWall, Category: "Walls", TypeID: "T1",
			Curve: &model.Curve{End: geom.Vec(4, 0, 0)}, Bounds: box(0, -0.1, 4, 0.1)},
		{ID: "w2", Class: model.ClassWall, Category: "Walls", TypeID: "T1",
			Curve: &model.Curve{Start: geom.Vec(10, 0, 0), End: geom.Vec(10, 4, 0)}, Bounds: box(9.9, 0, 10.1, 4)},
		{ID: "tb", Class: model.ClassTitleBlock, Name: "A1"},
		{ID: "L1", Class: model.ClassLevel, Params: map[string]float64{model.ParamElevation: 0}},
	})
	if err != nil {
		t.Fatalf("memory.New() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestElevateCommand(t *testing.T) {
	path := writeModel(t)
	out := filepath.Join(filepath.Dir(path), "out.json")

	if err := execute(t, "elevate", path, "--views", "elevation,plan", "-o", out); err != nil {
		t.Fatalf("elevate error: %v", err)
	}

	doc, err := memory.Load(out)
	if err != nil {
		t.Fatalf("Load(out) error: %v", err)
	}
	sheets, _ := doc.Elements(model.ClassSheet)
	if len(sheets) != 2 {
		t.Fatalf("sheets = %d, want 2", len(sheets))
	}
	if got := sheets[0].Sheet.Number; got != "EL_Basic Wall_w1" {
		t.Errorf("sheet number = %q, want %q", got, "EL_Basic Wall_w1")
	}
	views, _ := doc.Elements(model.ClassView)
	if len(views) != 4 {
		t.Errorf("views = %d, want 4 (elevation and plan per wall)", len(views))
	}

	orig, _ := memory.Load(path)
	if orig.Len() != 5 {
		t.Errorf("input model changed: %d elements, want 5", orig.Len())
	}
}

func TestElevateCommandDryRun(t *testing.T) {
	path := writeModel(t)

	if err := execute(t, "elevate", path, "w1", "--dry-run"); err != nil {
		t.Fatalf("elevate error: %v", err)
	}
	doc, _ := memory.Load(path)
	if doc.Len() != 5 {
		t.Errorf("dry run wrote the model: %d elements, want 5", doc.Len())
	}
}

func TestElevateCommandInvalidViews(t *testing.T) {
	path := writeModel(t)

	err := execute(t, "elevate", path, "--views", "isometric")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("elevate error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestElevateCommandZeroOffset(t *testing.T) {
	path := writeModel(t)

	if err := execute(t, "elevate", path, "--offset", "0", "--depth-offset", "0.5", "--no-sheets"); err != nil {
		t.Fatalf("elevate error: %v", err)
	}
	doc, _ := memory.Load(path)
	views, _ := doc.Elements(model.ClassView)
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}
	for _, v := range views {
		// Both walls are 4 long and 3 high.
		box := v.View.Box
		if math.Abs(box.Max.X-2) > 1e-9 || math.Abs(box.Max.Z-1.5) > 1e-9 {
			t.Errorf("view %s box = %v, want half extents 2 and 1.5", v.ID, box)
		}
	}
}

func TestCompleteViews(t *testing.T) {
	tests := []struct {
		toComplete string
		want       []string
	}{
		{"", []string{"elevation", "cross_section", "plan"}},
		{"c", []string{"cross_section"}},
		{"elevation,", []string{"elevation,cross_section", "elevation,plan"}},
		{"plan,El", []string{"plan,elevation"}},
		{"elevation,cross_section,plan,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.toComplete, func(t *testing.T) {
			got, _ := completeViews(nil, nil, tt.toComplete)
			if !slices.Equal(got, tt.want) {
				t.Errorf("completeViews(%q) = %v, want %v", tt.toComplete, got, tt.want)
			}
		})
	}
}

func TestAlignCommand(t *testing.T) {
	path := writeModel(t)

	if err := execute(t, "align", path, "w1", "w2"); err != nil {
		t.Fatalf("align error: %v", err)
	}

	doc, _ := memory.Load(path)
	w2, _ := doc.Element("w2")
	dir := w2.Curve.Direction()
	if math.Abs(dir.Y) > 1e-9 || math.Abs(math.Abs(dir.X)-1) > 1e-9 {
		t.Errorf("w2 direction = %v, want parallel to X", dir)
	}
}

func TestAlignCommandErrors(t *testing.T) {
	path := writeModel(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown target", []string{"align", path, "w1", "nope"}, errors.ErrCodeNotFound},
		{"no direction", []string{"align", path, "w1", "tb"}, errors.ErrCodeNoDirection},
		{"missing model", []string{"align", path + ".missing", "w1", "w2"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("align error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestFrameCommand(t *testing.T) {
	path := writeModel(t)

	if err := execute(t, "frame", path, "--json"); err != nil {
		t.Fatalf("frame error: %v", err)
	}
	if err := execute(t, "frame", path, "-c", "Doors"); err != nil {
		t.Fatalf("frame with empty selection error: %v", err)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Element", "Sheet"}, [][]string{{"w1", "EL_1"}, {"w2", "-"}}, nil)
	for _, want := range []string{"Element", "w1", "EL_1", "w2"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("renderTable() output missing %q:\n%s", want, out)
		}
	}
}
