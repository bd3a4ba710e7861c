package raster

import "github.com/gogpu/pixelforge/math3"

// MaxClipVerts bounds the vertex count of a polygon after clipping a
// quad against all six frustum planes.
const MaxClipVerts = 16

// The six clip-space half-spaces, in evaluation order:
// w+x, w-x, w+y, w-y, w+z, w-z. A vertex is inside when every distance
// is non-negative.
const numClipPlanes = 6

func planeDist(p math3.Vec4, plane int) float32 {
	switch plane {
	case 0:
		return p.W + p.X
	case 1:
		return p.W - p.X
	case 2:
		return p.W + p.Y
	case 3:
		return p.W - p.Y
	case 4:
		return p.W + p.Z
	default:
		return p.W - p.Z
	}
}

// outcode returns the bitmask of planes the position is outside of.
func outcode(p math3.Vec4) uint8 {
	var code uint8
	for i := 0; i < numClipPlanes; i++ {
		if planeDist(p, i) < 0 {
			code |= 1 << i
		}
	}
	return code
}

// PointInside reports whether a clip-space position lies inside the
// view frustum.
func PointInside(p math3.Vec4) bool {
	return outcode(p) == 0
}

func lerpVertex(a, b *Vertex, t float32) Vertex {
	return Vertex{
		Pos: math3.Lerp4(a.Pos, b.Pos, t),
		Color: [4]float32{
			a.Color[0] + (b.Color[0]-a.Color[0])*t,
			a.Color[1] + (b.Color[1]-a.Color[1])*t,
			a.Color[2] + (b.Color[2]-a.Color[2])*t,
			a.Color[3] + (b.Color[3]-a.Color[3])*t,
		},
		U: a.U + (b.U-a.U)*t,
		V: a.V + (b.V-a.V)*t,
	}
}

// ClipPolygon clips a convex polygon against the six frustum planes
// using Sutherland-Hodgman, interpolating all attributes at each edge
// crossing. Intermediate planes work in local buffers; scratch receives
// only the final polygon, and the returned slice aliases it. An empty
// result means the polygon is entirely outside.
func ClipPolygon(poly []Vertex, scratch []Vertex) []Vertex {
	// Trivial accept / reject by plane-sign bitmask.
	all := uint8(0)
	any := uint8(0xFF)
	for i := range poly {
		code := outcode(poly[i].Pos)
		all |= code
		any &= code
	}
	if any != 0 {
		return scratch[:0]
	}
	if all == 0 {
		out := append(scratch[:0], poly...)
		return out
	}

	var ping, pong [MaxClipVerts]Vertex
	in := append(ping[:0], poly...)
	out := pong[:0]

	for plane := 0; plane < numClipPlanes; plane++ {
		if all&(1<<plane) == 0 {
			continue // every vertex inside this plane
		}
		out = out[:0]
		for i := range in {
			cur := &in[i]
			next := &in[(i+1)%len(in)]
			dc := planeDist(cur.Pos, plane)
			dn := planeDist(next.Pos, plane)
			if dc >= 0 {
				out = append(out, *cur)
			}
			if (dc >= 0) != (dn >= 0) {
				t := dc / (dc - dn)
				out = append(out, lerpVertex(cur, next, t))
			}
		}
		in, out = out, in
		if len(in) == 0 {
			return scratch[:0]
		}
	}
	return append(scratch[:0], in...)
}

// ClipLine clips a clip-space segment against the six frustum planes
// with the parametric Liang-Barsky method, interpolating all
// attributes. ok is false when the segment is entirely outside.
func ClipLine(a, b Vertex) (ca, cb Vertex, ok bool) {
	t0, t1 := float32(0), float32(1)
	for plane := 0; plane < numClipPlanes; plane++ {
		da := planeDist(a.Pos, plane)
		db := planeDist(b.Pos, plane)
		switch {
		case da < 0 && db < 0:
			return a, b, false
		case da < 0:
			t := da / (da - db)
			if t > t0 {
				t0 = t
			}
		case db < 0:
			t := da / (da - db)
			if t < t1 {
				t1 = t
			}
		}
	}
	if t0 > t1 {
		return a, b, false
	}
	ca, cb = a, b
	if t0 > 0 {
		ca = lerpVertex(&a, &b, t0)
	}
	if t1 < 1 {
		cb = lerpVertex(&a, &b, t1)
	}
	return ca, cb, true
}
