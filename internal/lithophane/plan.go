package lithophane

import "fmt"

// Section identifies one part of the closed solid.
type Section int

const (
	SectionTop Section = iota
	SectionFront
	SectionBack
	SectionRight
	SectionLeft
	SectionFloor

	numSections
)

var sectionNames = [...]string{"top", "front", "back", "right", "left", "floor"}

func (s Section) String() string {
	if s < 0 || s >= numSections {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

// Plan is the exact triangle layout of a mesh for a width x height grid.
// Each section owns a contiguous range of the output buffer, in Section
// order.
type Plan struct {
	Width  uint
	Height uint

	counts [numSections]int
}

// NewPlan lays out a mesh for a grid of at least 2x2 samples.
func NewPlan(width, height uint) Plan {
	p := Plan{Width: width, Height: height}
	cols := int(width - 1)
	rows := int(height - 1)

	// Every grid cell is a quad of 2 triangles.
	p.counts[SectionTop] = cols * rows * 2

	// Front and back walls need 2 triangles per column, left and right 2 per row.
	p.counts[SectionFront] = cols * 2
	p.counts[SectionBack] = cols * 2
	p.counts[SectionRight] = rows * 2
	p.counts[SectionLeft] = rows * 2

	// One rectangle closes the bottom.
	p.counts[SectionFloor] = 2

	return p
}

// Total is the number of triangles in the mesh.
func (p Plan) Total() int {
	total := 0
	for _, c := range p.counts {
		total += c
	}
	return total
}

// Range returns the half-open index range [start, end) of section s.
func (p Plan) Range(s Section) (start, end int) {
	for i := Section(0); i < s; i++ {
		start += p.counts[i]
	}
	return start, start + p.counts[s]
}

// TriangleCount returns the number of triangles Generate emits for a
// width x height heightmap.
func TriangleCount(width, height uint) int {
	return NewPlan(width, height).Total()
}
