package render

import (
	"errors"
	"fmt"
)

var errAcquire = errors.New("acquire failed")

type fakeBuffer struct {
	label    string
	size     int
	released bool
}

func (that *fakeBuffer) Release() {
	that.released = true
}

type fakeAllocator struct {
	buffers []*fakeBuffer
	failOn  string
}

func (that *fakeAllocator) CreateVertexBuffer(label string, contents []byte) (Buffer, error) {
	return that.create(label, contents)
}

func (that *fakeAllocator) CreateIndexBuffer(label string, contents []byte) (Buffer, error) {
	return that.create(label, contents)
}

func (that *fakeAllocator) create(label string, contents []byte) (Buffer, error) {
	if label == that.failOn {
		return nil, errAcquire
	}
	buffer := &fakeBuffer{label: label, size: len(contents)}
	that.buffers = append(that.buffers, buffer)
	return buffer, nil
}

type drawCall struct {
	indexCount    uint32
	instanceCount uint32
	firstInstance uint32
}

// recorder collects every call made on a frame and its pass, in order.
type recorder struct {
	calls []string
	draws []drawCall
	clear Color

	endErr error
}

type fakePass struct {
	rec *recorder
}

func (that *fakePass) SetVertexBuffer(slot uint32, buffer Buffer) {
	that.rec.calls = append(that.rec.calls, fmt.Sprintf("vertex %d %s", slot, buffer.(*fakeBuffer).label))
}

func (that *fakePass) SetIndexBuffer(buffer Buffer) {
	that.rec.calls = append(that.rec.calls, "index "+buffer.(*fakeBuffer).label)
}

func (that *fakePass) DrawIndexed(indexCount, instanceCount, firstInstance uint32) {
	that.rec.calls = append(that.rec.calls, "draw")
	that.rec.draws = append(that.rec.draws, drawCall{indexCount, instanceCount, firstInstance})
}

func (that *fakePass) End() error {
	that.rec.calls = append(that.rec.calls, "end")
	return that.rec.endErr
}

type fakeFrame struct {
	rec *recorder
}

func (that *fakeFrame) BeginPass(clear Color) (Pass, error) {
	that.rec.calls = append(that.rec.calls, "begin")
	that.rec.clear = clear
	return &fakePass{rec: that.rec}, nil
}

func (that *fakeFrame) Submit() error {
	that.rec.calls = append(that.rec.calls, "submit")
	return nil
}

func (that *fakeFrame) Present() {
	that.rec.calls = append(that.rec.calls, "present")
}

func (that *fakeFrame) Release() {
	that.rec.calls = append(that.rec.calls, "release")
}

type fakeSource struct {
	rec *recorder
	err error
}

func (that *fakeSource) AcquireFrame() (Frame, error) {
	if that.err != nil {
		return nil, that.err
	}
	that.rec.calls = append(that.rec.calls, "acquire")
	return &fakeFrame{rec: that.rec}, nil
}
