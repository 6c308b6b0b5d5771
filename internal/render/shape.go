package render

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// VertexStride is position float32x2 followed by color float32x4.
	VertexStride = 24
	// InstanceStride is one float32x2 instance position.
	InstanceStride = 8
)

// Vertex buffer slots used by every shape.
const (
	VertexSlot   uint32 = 0
	InstanceSlot uint32 = 1
)

// Color is linear RGBA.
type Color [4]float32

type Vertex struct {
	Position [2]float32
	Color    Color
}

// Geometry is a small triangle-list mesh in normalized device coordinates.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16
}

// Buffer is a GPU resident buffer.
type Buffer interface {
	Release()
}

// Allocator uploads immutable buffers.
type Allocator interface {
	CreateVertexBuffer(label string, contents []byte) (Buffer, error)
	CreateIndexBuffer(label string, contents []byte) (Buffer, error)
}

// Pass records draw commands for one render pass.
type Pass interface {
	SetVertexBuffer(slot uint32, buffer Buffer)
	SetIndexBuffer(buffer Buffer)
	DrawIndexed(indexCount, instanceCount, firstInstance uint32)
	End() error
}

// Range is a half-open span [Start, End) of instance slots.
type Range struct {
	Start uint32
	End   uint32
}

func (that Range) Len() uint32 {
	return that.End - that.Start
}

// Shape is one static mesh instanced over a fixed set of slots. Buffers are uploaded once in
// NewShape; SetActive only rewrites the CPU side range list.
type Shape struct {
	label string

	vertices  Buffer
	indices   Buffer
	instances Buffer

	indexCount uint32
	slots      int
	ranges     []Range
}

// NewShape - uploads geometry and the full instance array. No instance is active.
func NewShape(allocator Allocator, label string, geometry Geometry, instances [][2]float32) (*Shape, error) {
	shape := &Shape{
		label:      label,
		indexCount: uint32(len(geometry.Indices)),
		slots:      len(instances),
	}

	var err error
	if shape.vertices, err = allocator.CreateVertexBuffer(label+" vertices", packVertices(geometry.Vertices)); err != nil {
		return nil, fmt.Errorf("failed create %s vertex buffer: %w", label, err)
	}

	if shape.indices, err = allocator.CreateIndexBuffer(label+" indices", packIndices(geometry.Indices)); err != nil {
		shape.Release()
		return nil, fmt.Errorf("failed create %s index buffer: %w", label, err)
	}

	if shape.instances, err = allocator.CreateVertexBuffer(label+" instances", packInstances(instances)); err != nil {
		shape.Release()
		return nil, fmt.Errorf("failed create %s instance buffer: %w", label, err)
	}

	return shape, nil
}

// SetActive - replaces the active ranges with the runs of true in visibility.
// Entries past the slot count are ignored.
func (that *Shape) SetActive(visibility []bool) {
	that.ranges = that.ranges[:0]

	n := min(len(visibility), that.slots)
	start := -1
	for i := 0; i < n; i++ {
		switch {
		case visibility[i] && start < 0:
			start = i
		case !visibility[i] && start >= 0:
			that.ranges = append(that.ranges, Range{Start: uint32(start), End: uint32(i)})
			start = -1
		}
	}

	if start >= 0 {
		that.ranges = append(that.ranges, Range{Start: uint32(start), End: uint32(n)})
	}
}

// Ranges - returns a copy of the active ranges.
func (that *Shape) Ranges() []Range {
	return append([]Range(nil), that.ranges...)
}

func (that *Shape) Slots() int {
	return that.slots
}

// Draw - issues one indexed draw per active range. Nothing is recorded when no range is active.
func (that *Shape) Draw(pass Pass) {
	if len(that.ranges) == 0 {
		return
	}

	pass.SetVertexBuffer(VertexSlot, that.vertices)
	pass.SetVertexBuffer(InstanceSlot, that.instances)
	pass.SetIndexBuffer(that.indices)

	for _, r := range that.ranges {
		pass.DrawIndexed(that.indexCount, r.Len(), r.Start)
	}
}

func (that *Shape) Release() {
	for _, buffer := range []Buffer{that.vertices, that.indices, that.instances} {
		if buffer != nil {
			buffer.Release()
		}
	}
	that.vertices, that.indices, that.instances = nil, nil, nil
}

// RangesToVisibility expands ranges back into one flag per slot.
func RangesToVisibility(ranges []Range, slots int) []bool {
	visibility := make([]bool, slots)
	for _, r := range ranges {
		for i := r.Start; i < r.End && int(i) < slots; i++ {
			visibility[i] = true
		}
	}
	return visibility
}

func packVertices(vertices []Vertex) []byte {
	out := make([]byte, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		out = appendFloats(out, v.Position[0], v.Position[1], v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}
	return out
}

func packInstances(instances [][2]float32) []byte {
	out := make([]byte, 0, len(instances)*InstanceStride)
	for _, p := range instances {
		out = appendFloats(out, p[0], p[1])
	}
	return out
}

// packIndices - uint16 indices, zero padded to a multiple of 4 bytes as buffer writes require.
func packIndices(indices []uint16) []byte {
	size := len(indices) * 2
	out := make([]byte, size, (size+3)&^3)
	for i, index := range indices {
		binary.LittleEndian.PutUint16(out[i*2:], index)
	}
	return out[:cap(out)]
}

func appendFloats(out []byte, values ...float32) []byte {
	for _, value := range values {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(value))
	}
	return out
}
