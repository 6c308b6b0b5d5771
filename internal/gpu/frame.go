package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/rocketscienceinc/tictacgpu/internal/apperror"
	"github.com/rocketscienceinc/tictacgpu/internal/render"
)

type buffer struct {
	buffer *wgpu.Buffer
}

func (that *buffer) Release() {
	if that.buffer != nil {
		that.buffer.Release()
		that.buffer = nil
	}
}

func unwrap(b render.Buffer) *wgpu.Buffer {
	return b.(*buffer).buffer
}

// frame is one acquired surface texture and the encoder recording into it.
type frame struct {
	context *Context

	texture *wgpu.Texture
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	pass    *pass
}

func (that *frame) BeginPass(clear render.Color) (render.Pass, error) {
	if that.pass != nil {
		return nil, fmt.Errorf("%w: render pass already open", apperror.ErrSurface)
	}

	encoder := that.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    that.view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(clear[0]),
				G: float64(clear[1]),
				B: float64(clear[2]),
				A: float64(clear[3]),
			},
		}},
	})
	encoder.SetPipeline(that.context.pipeline)

	that.pass = &pass{encoder: encoder}
	return that.pass, nil
}

// Submit - finishes the encoder and hands the commands to the queue without waiting on the GPU.
func (that *frame) Submit() error {
	if that.pass != nil {
		that.pass.release()
	}

	commands, err := that.encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("%w: failed finish command encoder: %w", apperror.ErrSurface, err)
	}
	defer commands.Release()

	that.context.queue.Submit(commands)

	return nil
}

func (that *frame) Present() {
	that.context.surface.Present()
}

func (that *frame) Release() {
	if that.pass != nil {
		that.pass.release()
	}
	that.encoder.Release()
	that.view.Release()
	that.texture.Release()
}

type pass struct {
	encoder *wgpu.RenderPassEncoder
}

func (that *pass) SetVertexBuffer(slot uint32, b render.Buffer) {
	that.encoder.SetVertexBuffer(slot, unwrap(b), 0, wgpu.WholeSize)
}

func (that *pass) SetIndexBuffer(b render.Buffer) {
	that.encoder.SetIndexBuffer(unwrap(b), wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
}

func (that *pass) DrawIndexed(indexCount, instanceCount, firstInstance uint32) {
	that.encoder.DrawIndexed(indexCount, instanceCount, 0, 0, firstInstance)
}

func (that *pass) End() error {
	if err := that.encoder.End(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrSurface, err)
	}
	return nil
}

func (that *pass) release() {
	if that.encoder != nil {
		that.encoder.Release()
		that.encoder = nil
	}
}
