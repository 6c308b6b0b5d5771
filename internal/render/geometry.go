package render

import "github.com/chewxy/math32"

const (
	// CellSpacing is the distance between neighbouring cell centers.
	CellSpacing float32 = 0.66
	// RingSegments is the tessellation of the ring piece.
	RingSegments = 24

	ringInner float32 = 0.15
	ringOuter float32 = 0.25

	crossHalfLength    float32 = 0.354
	crossHalfThickness float32 = 0.045

	gridHalfLength    float32 = 0.95
	gridHalfThickness float32 = 0.012
)

// CellPositions returns the instance position of every cell. Slot row*3+col, row 0 at the bottom.
func CellPositions() [][2]float32 {
	positions := make([][2]float32, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			positions = append(positions, [2]float32{
				float32(col-1) * CellSpacing,
				float32(row-1) * CellSpacing,
			})
		}
	}
	return positions
}

// GridGeometry - the four board lines between the cells.
func GridGeometry(color Color) Geometry {
	var g Geometry
	half := CellSpacing / 2
	for _, offset := range []float32{-half, half} {
		g.appendBar([2]float32{offset, 0}, gridHalfThickness, gridHalfLength, 0, color)
		g.appendBar([2]float32{0, offset}, gridHalfLength, gridHalfThickness, 0, color)
	}
	return g
}

// CrossGeometry - two bars crossing at ±45 degrees.
func CrossGeometry(color Color) Geometry {
	var g Geometry
	for _, angle := range []float32{math32.Pi / 4, -math32.Pi / 4} {
		g.appendBar([2]float32{}, crossHalfLength, crossHalfThickness, angle, color)
	}
	return g
}

// RingGeometry - an annulus of RingSegments quads.
func RingGeometry(color Color) Geometry {
	g := Geometry{
		Vertices: make([]Vertex, 0, RingSegments*2),
		Indices:  make([]uint16, 0, RingSegments*6),
	}

	step := 2 * math32.Pi / RingSegments
	for i := 0; i < RingSegments; i++ {
		sin, cos := math32.Sin(float32(i)*step), math32.Cos(float32(i)*step)
		g.Vertices = append(g.Vertices,
			Vertex{Position: [2]float32{cos * ringInner, sin * ringInner}, Color: color},
			Vertex{Position: [2]float32{cos * ringOuter, sin * ringOuter}, Color: color},
		)
	}

	for i := 0; i < RingSegments; i++ {
		j := (i + 1) % RingSegments
		inner, outer := uint16(2*i), uint16(2*i+1)
		nextInner, nextOuter := uint16(2*j), uint16(2*j+1)
		g.Indices = append(g.Indices,
			inner, outer, nextOuter,
			inner, nextOuter, nextInner,
		)
	}

	return g
}

// appendBar - a rectangle with the given half extents, rotated by angle around center.
// Corners are emitted counter-clockwise.
func (that *Geometry) appendBar(center [2]float32, halfWidth, halfHeight, angle float32, color Color) {
	base := uint16(len(that.Vertices))
	sin, cos := math32.Sin(angle), math32.Cos(angle)

	corners := [4][2]float32{
		{-halfWidth, -halfHeight},
		{halfWidth, -halfHeight},
		{halfWidth, halfHeight},
		{-halfWidth, halfHeight},
	}
	for _, c := range corners {
		that.Vertices = append(that.Vertices, Vertex{
			Position: [2]float32{
				center[0] + c[0]*cos - c[1]*sin,
				center[1] + c[0]*sin + c[1]*cos,
			},
			Color: color,
		})
	}

	that.Indices = append(that.Indices, base, base+1, base+2, base, base+2, base+3)
}
