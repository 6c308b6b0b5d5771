package gpu

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/rocketscienceinc/tictacgpu/internal/apperror"
	"github.com/rocketscienceinc/tictacgpu/internal/render"
)

// SurfaceSource is the window a Context presents to. The Context does not own it: the window
// must stay alive until Shutdown returns.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	FramebufferSize() (width, height int)
}

type Options struct {
	// PowerPreference is "high-performance" or "low-power".
	PowerPreference      string
	ForceFallbackAdapter bool
}

func (that Options) powerPreference() wgpu.PowerPreference {
	if that.PowerPreference == "low-power" {
		return wgpu.PowerPreferenceLowPower
	}
	return wgpu.PowerPreferenceHighPerformance
}

// Context owns the device, queue and swap surface.
type Context struct {
	logger *slog.Logger

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	pipeline *wgpu.RenderPipeline

	config     *wgpu.SurfaceConfiguration
	configured bool
	released   bool
}

// New - selects an adapter compatible with the window surface, requests a device and
// configures the surface at the window's current physical size with FIFO presentation.
func New(logger *slog.Logger, window SurfaceSource, opts Options) (*Context, error) {
	that := &Context{
		logger:   logger.With("component", "gpu"),
		instance: wgpu.CreateInstance(nil),
	}
	that.surface = that.instance.CreateSurface(window.SurfaceDescriptor())

	adapter, err := that.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    that.surface,
		PowerPreference:      opts.powerPreference(),
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	})
	if err != nil {
		that.Shutdown()
		return nil, fmt.Errorf("%w: %w", apperror.ErrNoAdapter, err)
	}
	if adapter == nil {
		that.Shutdown()
		return nil, apperror.ErrNoAdapter
	}
	that.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "tictacgpu device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		that.Shutdown()
		return nil, fmt.Errorf("%w: %w", apperror.ErrDeviceRequest, err)
	}
	that.device = device
	that.queue = device.GetQueue()

	capabilities := that.surface.GetCapabilities(adapter)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		that.Shutdown()
		return nil, fmt.Errorf("%w: adapter cannot present to this surface", apperror.ErrNoAdapter)
	}

	that.config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      capabilities.Formats[0],
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	}

	if that.pipeline, err = createPipeline(device, that.config.Format); err != nil {
		that.Shutdown()
		return nil, err
	}

	that.logger.Info("gpu context created",
		append(adapterAttrs(adapter.GetInfo()),
			"power_preference", opts.PowerPreference,
			"format", that.config.Format,
		)...,
	)

	that.Reconfigure(window.FramebufferSize())

	return that, nil
}

// Reconfigure - applies a new physical size to the surface. A zero dimension only records the
// size; frames report a stale surface until a usable size arrives.
func (that *Context) Reconfigure(width, height int) {
	if that.released {
		return
	}

	that.config.Width = uint32(max(width, 0))
	that.config.Height = uint32(max(height, 0))

	if width <= 0 || height <= 0 {
		that.configured = false
		that.logger.Debug("surface configure skipped", "width", width, "height", height)
		return
	}

	that.surface.Configure(that.adapter, that.device, that.config)
	that.configured = true

	that.logger.Debug("surface configured", "width", width, "height", height)
}

// Size - the last configured physical size.
func (that *Context) Size() (int, int) {
	return int(that.config.Width), int(that.config.Height)
}

// AcquireFrame - takes the next surface image and opens a command encoder for it.
func (that *Context) AcquireFrame() (render.Frame, error) {
	if that.released || !that.configured {
		return nil, apperror.ErrSurfaceOutdated
	}

	texture, err := that.surface.GetCurrentTexture()
	usable := hasNativeTexture(texture)
	if err = classifyAcquire(err, !usable); err != nil {
		if usable {
			texture.Release()
		}
		return nil, err
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("%w: failed create view: %w", apperror.ErrSurface, err)
	}

	encoder, err := that.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "frame encoder",
	})
	if err != nil {
		view.Release()
		texture.Release()
		return nil, fmt.Errorf("%w: failed create command encoder: %w", apperror.ErrSurface, err)
	}

	return &frame{
		context: that,
		texture: texture,
		view:    view,
		encoder: encoder,
	}, nil
}

// hasNativeTexture - reports whether the wrapper holds a native texture. On an outdated or lost
// surface the binding returns a wrapper around a null handle and no error, and any call on it
// aborts the process.
func hasNativeTexture(texture *wgpu.Texture) bool {
	if texture == nil {
		return false
	}

	ref := reflect.ValueOf(texture).Elem().FieldByName("ref")
	if ref.Kind() != reflect.Pointer && ref.Kind() != reflect.UnsafePointer {
		return true
	}
	return !ref.IsNil()
}

func adapterAttrs(info wgpu.AdapterInfo) []any {
	return []any{
		"adapter", info.Name,
		"vendor", info.VendorName,
		"backend", info.BackendType.String(),
		"adapter_type", info.AdapterType.String(),
	}
}

// classifyAcquire - a stale or lost image is recoverable, every other failure is fatal.
func classifyAcquire(err error, missing bool) error {
	if err == nil {
		if missing {
			return fmt.Errorf("%w: no surface texture", apperror.ErrSurfaceOutdated)
		}
		return nil
	}

	message := strings.ToLower(err.Error())
	if strings.Contains(message, "outdated") || strings.Contains(message, "lost") {
		return fmt.Errorf("%w: %w", apperror.ErrSurfaceOutdated, err)
	}

	return fmt.Errorf("%w: %w", apperror.ErrSurface, err)
}

func (that *Context) CreateVertexBuffer(label string, contents []byte) (render.Buffer, error) {
	return that.createBuffer(label, contents, wgpu.BufferUsageVertex)
}

func (that *Context) CreateIndexBuffer(label string, contents []byte) (render.Buffer, error) {
	return that.createBuffer(label, contents, wgpu.BufferUsageIndex)
}

func (that *Context) createBuffer(label string, contents []byte, usage wgpu.BufferUsage) (render.Buffer, error) {
	buf, err := that.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    usage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed create buffer %q: %w", label, err)
	}

	return &buffer{buffer: buf}, nil
}

// Shutdown - releases every GPU object. Safe to call more than once; must run before the
// window is destroyed.
func (that *Context) Shutdown() {
	if that.released {
		return
	}
	that.released = true
	that.configured = false

	if that.pipeline != nil {
		that.pipeline.Release()
	}
	if that.queue != nil {
		that.queue.Release()
	}
	if that.device != nil {
		that.device.Release()
	}
	if that.adapter != nil {
		that.adapter.Release()
	}
	if that.surface != nil {
		that.surface.Release()
	}
	if that.instance != nil {
		that.instance.Release()
	}

	that.logger.Debug("gpu context released")
}
