package frame_test

import (
	"math"
	"testing"

	"github.com/matzehuels/framewright/pkg/frame"
	"github.com/matzehuels/framewright/pkg/geom"
	"github.com/matzehuels/framewright/pkg/model"
	"github.com/matzehuels/framewright/pkg/model/memory"
)

const tol = 1e-9

func box(minX, minY, minZ, maxX, maxY, maxZ float64) *geom.BoundingBox {
	return &geom.BoundingBox{Min: geom.Vec(minX, minY, minZ), Max: geom.Vec(maxX, maxY, maxZ)}
}

func wall(id model.ID, start, end geom.Vector3, height float64) *model.Element {
	b := geom.BoxOf(start, end, end.Add(geom.Vec(0, 0, height)))
	b.Min.Y -= 0.5
	b.Max.Y += 0.5
	return &model.Element{
		ID:       id,
		Class:    model.ClassWall,
		Category: "Walls",
		Curve:    &model.Curve{Start: start, End: end},
		Bounds:   &b,
		Params:   map[string]float64{model.ParamHeight: height},
	}
}

func familyType(id model.ID, placement model.FamilyPlacement, bounds *geom.BoundingBox) *model.Element {
	return &model.Element{ID: id, Class: model.ClassElementType, Placement: placement, Bounds: bounds}
}

func assertFrame(t *testing.T, got, want frame.Frame) {
	t.Helper()
	if got.Valid != want.Valid {
		t.Fatalf("Valid = %v, want %v", got.Valid, want.Valid)
	}
	if !got.Origin.ApproxEqual(want.Origin, tol) {
		t.Errorf("Origin = %v, want %v", got.Origin, want.Origin)
	}
	if !got.Direction.ApproxEqual(want.Direction, tol) {
		t.Errorf("Direction = %v, want %v", got.Direction, want.Direction)
	}
	if math.Abs(got.Width-want.Width) > tol {
		t.Errorf("Width = %v, want %v", got.Width, want.Width)
	}
	if math.Abs(got.Height-want.Height) > tol {
		t.Errorf("Height = %v, want %v", got.Height, want.Height)
	}
	if math.Abs(got.Depth-want.Depth) > tol {
		t.Errorf("Depth = %v, want %v", got.Depth, want.Depth)
	}
}

func TestInferWall(t *testing.T) {
	w := wall("w1", geom.Vec(0, 0, 0), geom.Vec(10, 0, 0), 8)
	s := memory.MustNew(w)

	got := frame.Infer(w, s)
	assertFrame(t, got, frame.Frame{
		Origin:    geom.Vec(5, 0, 4),
		Direction: geom.Vec(10, 0, 0),
		Width:     10,
		Height:    8,
		Valid:     true,
	})
}

func TestInferCurveDirectionAndWidth(t *testing.T) {
	tests := []struct {
		name       string
		start, end geom.Vector3
	}{
		{"along x", geom.Vec(0, 0, 0), geom.Vec(4, 0, 0)},
		{"diagonal", geom.Vec(1, 1, 0), geom.Vec(4, 5, 0)},
		{"reversed", geom.Vec(3, 2, 0), geom.Vec(-3, 2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wall("w", tt.start, tt.end, 3)
			got := frame.Infer(w, memory.MustNew(w))
			want := tt.end.Sub(tt.start)
			if !got.Direction.ApproxEqual(want, tol) {
				t.Errorf("Direction = %v, want %v", got.Direction, want)
			}
			if math.Abs(got.Width-want.Length()) > tol {
				t.Errorf("Width = %v, want %v", got.Width, want.Length())
			}
		})
	}
}

func TestInferCurveHeightFallbacks(t *testing.T) {
	typed := familyType("T", model.PlacementNone, nil)
	typed.Params = map[string]float64{model.ParamHeight: 6}

	tests := []struct {
		name   string
		elem   *model.Element
		height float64
	}{
		{
			name: "instance parameter",
			elem: &model.Element{ID: "a", Class: model.ClassGeneric, Curve: &model.Curve{End: geom.Vec(2, 0, 0)},
				Bounds: box(0, 0, 0, 2, 1, 5), Params: map[string]float64{model.ParamHeight: 4}},
			height: 4,
		},
		{
			name: "type parameter",
			elem: &model.Element{ID: "a", Class: model.ClassGeneric, TypeID: "T", Curve: &model.Curve{End: geom.Vec(2, 0, 0)},
				Bounds: box(0, 0, 0, 2, 1, 5)},
			height: 6,
		},
		{
			name: "default",
			elem: &model.Element{ID: "a", Class: model.ClassGeneric, Curve: &model.Curve{End: geom.Vec(2, 0, 0)},
				Bounds: box(0, 0, 0, 2, 1, 5)},
			height: frame.DefaultHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.MustNew(typed, tt.elem)
			if got := frame.Infer(tt.elem, s); got.Height != tt.height {
				t.Errorf("Height = %v, want %v", got.Height, tt.height)
			}
		})
	}
}

func TestInferCurveDrivenInstance(t *testing.T) {
	beam := &model.Element{
		ID:     "beam",
		Class:  model.ClassFamilyInstance,
		TypeID: "T",
		Curve:  &model.Curve{Start: geom.Vec(0, 0, 3), End: geom.Vec(6, 0, 4)},
		Bounds: box(0, -0.2, 2.5, 6, 0.2, 4),
	}
	s := memory.MustNew(familyType("T", model.PlacementCurveDrivenStructural, nil), beam)

	got := frame.Infer(beam, s)
	assertFrame(t, got, frame.Frame{
		Origin:    geom.Vec(3, 0, 3.25),
		Direction: geom.Vec(6, 0, 0),
		Width:     6,
		Height:    1.5,
		Valid:     true,
	})
}

func TestInferPointBased(t *testing.T) {
	typeBox := box(-1, -0.5, 0, 1, 0.5, 2)

	tests := []struct {
		name      string
		placement model.FamilyPlacement
		rotation  float64
		typeBox   *geom.BoundingBox
		want      frame.Frame
	}{
		{
			name:      "one level rotated",
			placement: model.PlacementOneLevel,
			rotation:  math.Pi / 2,
			typeBox:   typeBox,
			want:      frame.Frame{Origin: geom.Vec(5, 5, 1), Direction: geom.Vec(0, 2, 0), Width: 2, Height: 2, Depth: 1, Valid: true},
		},
		{
			name:      "work plane unrotated",
			placement: model.PlacementWorkPlane,
			typeBox:   typeBox,
			want:      frame.Frame{Origin: geom.Vec(5, 5, 1), Direction: geom.Vec(2, 0, 0), Width: 2, Height: 2, Depth: 1, Valid: true},
		},
		{
			name:      "unrecognised placement with point",
			placement: model.PlacementViewBased,
			rotation:  math.Pi,
			typeBox:   typeBox,
			want:      frame.Frame{Origin: geom.Vec(5, 5, 1), Direction: geom.Vec(-2, 0, 0), Width: 2, Height: 2, Depth: 1, Valid: true},
		},
		{
			name:      "no type bounds uses instance bounds unrotated",
			placement: model.PlacementTwoLevels,
			rotation:  math.Pi / 2,
			want:      frame.Frame{Origin: geom.Vec(5, 5, 1), Direction: geom.Vec(1, 0, 0), Width: 1, Height: 2, Depth: 2, Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := &model.Element{
				ID:     "chair",
				Class:  model.ClassFamilyInstance,
				TypeID: "T",
				Point:  &model.LocationPoint{Point: geom.Vec(5, 5, 0), Rotation: tt.rotation},
				Bounds: box(4.5, 4, 0, 5.5, 6, 2),
			}
			s := memory.MustNew(familyType("T", tt.placement, tt.typeBox), inst)

			p := frame.Classify(inst, s)
			if p.Kind() != frame.KindPointBased {
				t.Fatalf("Kind() = %v, want %v", p.Kind(), frame.KindPointBased)
			}
			assertFrame(t, p.Frame(), tt.want)
		})
	}
}

func TestInferHosted(t *testing.T) {
	host := wall("host", geom.Vec(0, 0, 0), geom.Vec(10, 0, 0), 3)
	doorType := familyType("T", model.PlacementOneLevelHosted, box(-0.5, -0.1, 0, 0.5, 0.1, 2.1))

	tests := []struct {
		name    string
		flipped bool
		bounds  *geom.BoundingBox
		want    frame.Frame
	}{
		{
			name:   "facing",
			bounds: box(3.5, -0.2, 0, 4.5, 0.2, 2.1),
			want:   frame.Frame{Origin: geom.Vec(4, 0, 0), Direction: geom.Vec(10, 0, 0), Width: 1, Height: 2.1, Valid: true},
		},
		{
			name:    "flipped",
			flipped: true,
			bounds:  box(3.5, -0.2, 0, 4.5, 0.2, 2.1),
			want:    frame.Frame{Origin: geom.Vec(4, 0, 0), Direction: geom.Vec(-10, 0, 0), Width: 1, Height: 2.1, Valid: true},
		},
		{
			name: "no instance bounds",
			want: frame.Frame{Origin: geom.Vec(5, 0, 0), Direction: geom.Vec(10, 0, 0), Width: 1, Height: 2.1, Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			door := &model.Element{
				ID:            "door",
				Class:         model.ClassFamilyInstance,
				TypeID:        "T",
				HostID:        "host",
				FacingFlipped: tt.flipped,
				Bounds:        tt.bounds,
			}
			s := memory.MustNew(host, doorType, door)

			p := frame.Classify(door, s)
			if p.Kind() != frame.KindHosted {
				t.Fatalf("Kind() = %v, want %v", p.Kind(), frame.KindHosted)
			}
			assertFrame(t, p.Frame(), tt.want)
		})
	}
}

func TestInferHostWithoutCurveFallsBack(t *testing.T) {
	host := &model.Element{ID: "host", Class: model.ClassGeneric, Bounds: box(0, 0, 0, 1, 1, 1)}
	door := &model.Element{
		ID:     "door",
		Class:  model.ClassFamilyInstance,
		TypeID: "T",
		HostID: "host",
		Bounds: box(0, 0, 0, 2, 1, 3),
	}
	s := memory.MustNew(host, familyType("T", model.PlacementOneLevelHosted, nil), door)

	p := frame.Classify(door, s)
	if p.Kind() != frame.KindBoundedVolume {
		t.Fatalf("Kind() = %v, want %v", p.Kind(), frame.KindBoundedVolume)
	}
	assertFrame(t, p.Frame(), frame.Frame{
		Origin: geom.Vec(1, 0.5, 1.5), Direction: geom.Vec(2, 0, 0), Width: 2, Height: 3, Depth: 1, Valid: true,
	})
}

func TestInferBoundedVolume(t *testing.T) {
	tests := []struct {
		name string
		elem *model.Element
		want frame.Frame
	}{
		{
			name: "instance bounds",
			elem: &model.Element{ID: "e", Class: model.ClassGeneric, Bounds: box(0, 0, 0, 4, 2, 6)},
			want: frame.Frame{Origin: geom.Vec(2, 1, 3), Direction: geom.Vec(4, 0, 0), Width: 4, Height: 6, Depth: 2, Valid: true},
		},
		{
			name: "type bounds for extents",
			elem: &model.Element{ID: "e", Class: model.ClassGeneric, TypeID: "T", Bounds: box(0, 0, 0, 4, 2, 6)},
			want: frame.Frame{Origin: geom.Vec(2, 1, 3), Direction: geom.Vec(4, 0, 0), Width: 1, Height: 3, Depth: 2, Valid: true},
		},
		{
			name: "missing type",
			elem: &model.Element{ID: "e", Class: model.ClassGeneric, TypeID: "nope", Bounds: box(0, 0, 0, 4, 2, 6)},
			want: frame.Frame{Origin: geom.Vec(2, 1, 3), Direction: geom.Vec(4, 0, 0), Width: 4, Height: 6, Depth: 2, Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.MustNew(familyType("T", model.PlacementNone, box(0, 0, 0, 1, 2, 3)), tt.elem)
			assertFrame(t, frame.Infer(tt.elem, s), tt.want)
		})
	}
}

func TestInferWithoutBoundsIsInvalid(t *testing.T) {
	tests := []struct {
		name string
		elem *model.Element
	}{
		{"generic", &model.Element{ID: "e", Class: model.ClassGeneric}},
		{"curve", &model.Element{ID: "e", Class: model.ClassWall, Curve: &model.Curve{End: geom.Vec(1, 0, 0)}}},
		{"point", &model.Element{ID: "e", Class: model.ClassFamilyInstance, Point: &model.LocationPoint{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frame.Infer(tt.elem, memory.MustNew(tt.elem))
			if got.Valid {
				t.Errorf("Infer() = %v, want invalid", got)
			}
			if got.HasDirection() {
				t.Error("HasDirection() = true for an invalid frame")
			}
		})
	}

	if got := frame.Infer(nil, memory.MustNew()); got.Valid {
		t.Errorf("Infer(nil) = %v, want invalid", got)
	}
}

func TestInferViewProxy(t *testing.T) {
	view := &model.Element{ID: "v", Class: model.ClassView, View: &model.ViewFrame{
		Type:          model.ViewElevation,
		Origin:        geom.Vec(2, 3, 0),
		Right:         geom.YAxis,
		Up:            geom.ZAxis,
		ViewDirection: geom.XAxis.Negate(),
	}}
	plane := &model.Element{ID: "sp", Class: model.ClassSketchPlane, OwnerViewID: "v"}
	viewer := &model.Element{ID: "viewer", Class: model.ClassViewer, SketchPlaneID: "sp", Bounds: box(0, 0, 0, 1, 2, 3)}
	orphan := &model.Element{ID: "orphan", Class: model.ClassViewer, SketchPlaneID: "gone", Bounds: box(0, 0, 0, 1, 2, 3)}
	s := memory.MustNew(view, plane, viewer, orphan)

	p := frame.Classify(viewer, s)
	if p.Kind() != frame.KindViewProxy {
		t.Fatalf("Kind() = %v, want %v", p.Kind(), frame.KindViewProxy)
	}
	assertFrame(t, p.Frame(), frame.Frame{
		Origin: geom.Vec(2, 3, 0), Direction: geom.YAxis, Width: 1, Height: 3, Depth: 2, Valid: true,
	})

	if k := frame.Classify(orphan, s).Kind(); k != frame.KindBoundedVolume {
		t.Errorf("Classify(orphan).Kind() = %v, want %v", k, frame.KindBoundedVolume)
	}
}

func TestInferBatchCountsInvalid(t *testing.T) {
	elements := []*model.Element{
		wall("w1", geom.Vec(0, 0, 0), geom.Vec(5, 0, 0), 3),
		{ID: "bare", Class: model.ClassGeneric},
		wall("w2", geom.Vec(0, 0, 0), geom.Vec(0, 5, 0), 3),
		{ID: "line", Class: model.ClassGeneric, Curve: &model.Curve{End: geom.Vec(1, 0, 0)}},
		{ID: "box", Class: model.ClassGeneric, Bounds: box(0, 0, 0, 1, 1, 1)},
	}
	s := memory.MustNew(elements...)

	valid := 0
	for _, e := range elements {
		if frame.Infer(e, s).Valid {
			valid++
		}
	}
	if valid != 3 {
		t.Errorf("valid frames = %d, want 3", valid)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind frame.Kind
		want string
	}{
		{frame.KindViewProxy, "derived_view_proxy"},
		{frame.KindCurveBased, "curve_based"},
		{frame.KindHosted, "hosted_on_curve_host"},
		{frame.Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
