package lithophane

import (
	"fmt"

	"github.com/hschendel/stl"
)

// sectionWriter fills one section's slice of the mesh buffer in order.
type sectionWriter struct {
	section Section
	tris    []stl.Triangle
	n       int
}

func (w *sectionWriter) add(a, b, c stl.Vec3) {
	w.tris[w.n] = NewTriangle(a, b, c, false)
	w.n++
}

// done panics unless every slot of the section was written. A mismatch
// means the plan and the generator disagree, which is a bug.
func (w *sectionWriter) done() {
	if w.n != len(w.tris) {
		panic(fmt.Sprintf("lithophane: %s section wrote %d of %d triangles", w.section, w.n, len(w.tris)))
	}
}

// Generate builds the closed solid for hm. The top surface follows the
// heightmap, four vertical walls drop from its edges to a flat floor
// baseHeight below the lowest sample, and two triangles close the floor.
// Every triangle is wound counter-clockwise seen from outside the solid.
//
// The triangles are laid out as described by NewPlan(hm.Width(), hm.Height()).
func Generate(hm *Heightmap, baseHeight float32) []stl.Triangle {
	plan := NewPlan(hm.width, hm.height)
	mesh := make([]stl.Triangle, plan.Total())
	floor := hm.FloorHeight(baseHeight)

	sections := []struct {
		section Section
		fill    func(w *sectionWriter)
	}{
		{SectionTop, hm.top},
		{SectionFront, func(w *sectionWriter) { hm.front(w, floor) }},
		{SectionBack, func(w *sectionWriter) { hm.back(w, floor) }},
		{SectionRight, func(w *sectionWriter) { hm.right(w, floor) }},
		{SectionLeft, func(w *sectionWriter) { hm.left(w, floor) }},
		{SectionFloor, func(w *sectionWriter) { hm.bottom(w, floor) }},
	}
	for _, s := range sections {
		start, end := plan.Range(s.section)
		w := &sectionWriter{section: s.section, tris: mesh[start:end]}
		s.fill(w)
		w.done()
	}

	return mesh
}

// vertex returns the top surface point above sample (x, y).
func (hm *Heightmap) vertex(x, y uint) stl.Vec3 {
	return stl.Vec3{float32(x), float32(y), hm.At(x, y)}
}

func (hm *Heightmap) top(w *sectionWriter) {
	for i := uint(0); i < hm.width-1; i++ {
		for j := uint(0); j < hm.height-1; j++ {
			w.add(hm.vertex(i, j), hm.vertex(i+1, j), hm.vertex(i, j+1))
			w.add(hm.vertex(i+1, j), hm.vertex(i+1, j+1), hm.vertex(i, j+1))
		}
	}
}

// front closes the y=0 edge; its normals point towards -y.
func (hm *Heightmap) front(w *sectionWriter, floor float32) {
	for i := uint(0); i < hm.width-1; i++ {
		x0, x1 := float32(i), float32(i+1)
		w.add(stl.Vec3{x0, 0, floor}, stl.Vec3{x1, 0, floor}, hm.vertex(i, 0))
		w.add(hm.vertex(i+1, 0), hm.vertex(i, 0), stl.Vec3{x1, 0, floor})
	}
}

// back closes the y=height-1 edge; its normals point towards +y.
func (hm *Heightmap) back(w *sectionWriter, floor float32) {
	j := hm.height - 1
	y := float32(j)
	for i := uint(0); i < hm.width-1; i++ {
		x0, x1 := float32(i), float32(i+1)
		w.add(hm.vertex(i, j), stl.Vec3{x1, y, floor}, stl.Vec3{x0, y, floor})
		w.add(stl.Vec3{x1, y, floor}, hm.vertex(i, j), hm.vertex(i+1, j))
	}
}

// right closes the x=width-1 edge; its normals point towards +x.
func (hm *Heightmap) right(w *sectionWriter, floor float32) {
	i := hm.width - 1
	x := float32(i)
	for j := uint(0); j < hm.height-1; j++ {
		y0, y1 := float32(j), float32(j+1)
		w.add(stl.Vec3{x, y0, floor}, stl.Vec3{x, y1, floor}, hm.vertex(i, j))
		w.add(hm.vertex(i, j+1), hm.vertex(i, j), stl.Vec3{x, y1, floor})
	}
}

// left closes the x=0 edge; its normals point towards -x.
func (hm *Heightmap) left(w *sectionWriter, floor float32) {
	for j := uint(0); j < hm.height-1; j++ {
		y0, y1 := float32(j), float32(j+1)
		w.add(hm.vertex(0, j), stl.Vec3{0, y1, floor}, stl.Vec3{0, y0, floor})
		w.add(stl.Vec3{0, y1, floor}, hm.vertex(0, j), hm.vertex(0, j+1))
	}
}

// bottom spans the whole floor with one rectangle facing -z.
func (hm *Heightmap) bottom(w *sectionWriter, floor float32) {
	xMax := float32(hm.width - 1)
	yMax := float32(hm.height - 1)
	w.add(stl.Vec3{0, yMax, floor}, stl.Vec3{xMax, 0, floor}, stl.Vec3{0, 0, floor})
	w.add(stl.Vec3{0, yMax, floor}, stl.Vec3{xMax, yMax, floor}, stl.Vec3{xMax, 0, floor})
}

// Stats summarises a generated mesh.
type Stats struct {
	Triangles  int
	Degenerate int
	// Floor is the lowest z of any vertex, zero for an empty mesh.
	Floor float32
}

// Measure counts the triangles of mesh, how many of them have zero area, and
// finds the height of its floor.
func Measure(mesh []stl.Triangle) Stats {
	s := Stats{Triangles: len(mesh)}
	for i, t := range mesh {
		if IsDegenerate(t) {
			s.Degenerate++
		}
		for k, v := range t.Vertices {
			if (i == 0 && k == 0) || v[2] < s.Floor {
				s.Floor = v[2]
			}
		}
	}
	return s
}

// Solid wraps a generated mesh for the STL writer.
func Solid(name string, mesh []stl.Triangle, ascii bool) *stl.Solid {
	return &stl.Solid{
		Name:      name,
		Triangles: mesh,
		IsAscii:   ascii,
	}
}
