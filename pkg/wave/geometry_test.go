package wave

import (
	"math"
	"reflect"
	"testing"
)

func testParams(troughX float64) Params {
	return Params{
		Width:         500,
		Height:        60,
		TopPadding:    10,
		TroughDepth:   8,
		ItemAreaWidth: 100,
		TroughCenterX: troughX,
		ItemCount:     5,
	}
}

func hasPoint(path Path, want Point) bool {
	for _, s := range path.Segments {
		if s.Kind == SegmentClose {
			continue
		}
		if s.End() == want {
			return true
		}
	}
	return false
}

// TestBuildPath_Closed 测试轮廓闭合：起止于 (0, height)，经过 (width, height)
func TestBuildPath_Closed(t *testing.T) {
	for _, x := range []float64{0, 50, 250, 333.3, 450, 500} {
		p := testParams(x)
		path := BuildPath(p)

		if got := path.Start(); got != (Point{0, p.Height}) {
			t.Errorf("trough %v: start = %+v, want (0, %v)", x, got, p.Height)
		}
		if got := path.LastPoint(); got != (Point{0, p.Height}) {
			t.Errorf("trough %v: last point = %+v, want (0, %v)", x, got, p.Height)
		}
		if !path.IsClosed() {
			t.Errorf("trough %v: path is not closed", x)
		}
		if !hasPoint(path, Point{p.Width, p.Height}) {
			t.Errorf("trough %v: path does not pass (width, height)", x)
		}
	}
}

func TestBuildPath_Shape(t *testing.T) {
	path := BuildPath(testParams(250))

	want := []Segment{
		{Kind: SegmentMoveTo, Points: [3]Point{{0, 60}}},
		{Kind: SegmentLineTo, Points: [3]Point{{0, 10}}},
		{Kind: SegmentLineTo, Points: [3]Point{{250 - 50 - 100.0/3, 10}}},
		{Kind: SegmentCubicTo, Points: [3]Point{{250 - 100.0/3, 10}, {200, 60}, {250, 56}}},
		{Kind: SegmentCubicTo, Points: [3]Point{{300, 60}, {250 + 100.0/3, 10}, {250 + 50 + 100.0/3, 10}}},
		{Kind: SegmentLineTo, Points: [3]Point{{500, 10}}},
		{Kind: SegmentLineTo, Points: [3]Point{{500, 60}}},
		{Kind: SegmentLineTo, Points: [3]Point{{0, 60}}},
		{Kind: SegmentClose},
	}

	if len(path.Segments) != len(want) {
		t.Fatalf("segment count = %d, want %d", len(path.Segments), len(want))
	}
	for i, s := range path.Segments {
		if s.Kind != want[i].Kind {
			t.Errorf("segment %d kind = %v, want %v", i, s.Kind, want[i].Kind)
			continue
		}
		for j := range s.Points {
			if !approxPoint(s.Points[j], want[i].Points[j]) {
				t.Errorf("segment %d point %d = %+v, want %+v", i, j, s.Points[j], want[i].Points[j])
			}
		}
	}
}

func approxPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// TestBuildPath_ClampsAtEdges 波谷靠近边缘时，起止点被限制在 [0, width]
func TestBuildPath_ClampsAtEdges(t *testing.T) {
	left := BuildPath(testParams(50))
	if got := left.Segments[2].Points[0].X; got != 0 {
		t.Errorf("left edge start x = %v, want 0", got)
	}

	right := BuildPath(testParams(450))
	if got := right.Segments[4].Points[2].X; got != 500 {
		t.Errorf("right edge end x = %v, want 500", got)
	}
}

func TestBuildPath_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero width", Params{Width: 0, Height: 60, ItemCount: 5, ItemAreaWidth: 100}},
		{"negative width", Params{Width: -10, Height: 60, ItemCount: 5, ItemAreaWidth: 100}},
		{"no items", Params{Width: 500, Height: 60, ItemCount: 0}},
		{"no item width", Params{Width: 500, Height: 60, ItemCount: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := BuildPath(tt.p)
			for _, s := range path.Segments {
				if s.Kind == SegmentCubicTo {
					t.Fatal("degenerate outline must not contain curves")
				}
			}
			if path.Start() != (Point{0, tt.p.Height}) || path.LastPoint() != (Point{0, tt.p.Height}) {
				t.Errorf("degenerate outline must start and end at (0, height)")
			}
			lo, hi := path.Bounds()
			if lo.Y != 0 || hi.Y != tt.p.Height {
				t.Errorf("bounds y = [%v, %v], want [0, %v]", lo.Y, hi.Y, tt.p.Height)
			}
		})
	}
}

func TestBuildPath_Deterministic(t *testing.T) {
	a := BuildPath(testParams(123.4))
	b := BuildPath(testParams(123.4))
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different outlines")
	}
}

func TestPathContains(t *testing.T) {
	path := BuildPath(testParams(250))

	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"solid bar left", Point{20, 40}, true},
		{"solid bar right", Point{480, 40}, true},
		{"above wave edge", Point{20, 5}, false},
		{"inside trough", Point{250, 30}, false},
		{"below trough bottom", Point{250, 58}, true},
		{"outside surface", Point{600, 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := path.Contains(tt.pt, 16); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	path := BuildPath(testParams(250))
	points := path.Flatten(8)

	// 6 个直线端点 + 2 条曲线各 8 段；闭合点与起点重合，不重复添加
	if want := 6 + 2*8; len(points) != want {
		t.Errorf("flattened points = %d, want %d", len(points), want)
	}
	if points[0] != points[len(points)-1] {
		t.Errorf("flattened outline not closed: %+v .. %+v", points[0], points[len(points)-1])
	}

	// 第一条曲线终点：波谷底部
	bottom := points[3+8-1]
	if math.Abs(bottom.X-250) > 1e-9 || math.Abs(bottom.Y-56) > 1e-9 {
		t.Errorf("trough bottom = %+v, want (250, 56)", bottom)
	}
}
