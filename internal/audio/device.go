package audio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gen2brain/malgo"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/linksound/wavekit/pkg/channels"
	"github.com/linksound/wavekit/pkg/collections"
)

// FeedConfig describes the capture device driving the amplitude feed.
type FeedConfig struct {
	SampleRate int
	Channels   int
}

// Feed is a live amplitude source backed by a capture device. Each audio
// buffer is reduced to a single peak amplitude in [0,1].
type Feed interface {
	// EnumerateDevices lists available capture devices.
	EnumerateDevices(ctx context.Context) ([]Info, error)

	// Capture initializes the underlying device and returns the channel
	// that, once Start is called, receives one amplitude per audio buffer.
	Capture(ctx context.Context) (<-chan float64, error)

	// Start starts the capture device.
	Start(ctx context.Context) error
	// Stop stops the capture device. A no-op if already deallocated.
	Stop(ctx context.Context) error
	// Toggle starts or stops depending on current state.
	Toggle(ctx context.Context) error
	// IsStarted reports whether the device is currently capturing.
	IsStarted() bool

	// Dealloc releases the underlying device and closes the amplitude
	// channel.
	Dealloc(ctx context.Context)
}

// Capture parameters used when the caller does not specify them.
const (
	defaultSampleRate = 16_000
	defaultChannels   = 1
)

type feed struct {
	conf *FeedConfig

	mgCtx    *malgo.AllocatedContext
	mgDevice *malgo.Device
	ampC     chan float64
}

// NewFeed creates an amplitude feed for the given capture configuration.
// A nil or partially filled conf falls back to the defaults.
func NewFeed(conf *FeedConfig) Feed {
	c := FeedConfig{SampleRate: defaultSampleRate, Channels: defaultChannels}
	if conf != nil {
		if conf.SampleRate > 0 {
			c.SampleRate = conf.SampleRate
		}
		if conf.Channels > 0 {
			c.Channels = conf.Channels
		}
	}
	return &feed{conf: &c}
}

func (f *feed) EnumerateDevices(ctx context.Context) ([]Info, error) {
	devCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, waveform.WrapError(waveform.CodeRecordingFailed, err,
			"failed to initialize audio context")
	}
	defer uninitializeContext(devCtx)

	captureDevices, err := devCtx.Devices(malgo.Capture)
	if err != nil {
		return nil, waveform.WrapError(waveform.CodeRecordingFailed, err,
			"failed to list capture devices")
	}

	return collections.Apply(captureDevices, malgoDeviceInfoToInfo), nil
}

func (f *feed) Capture(ctx context.Context) (<-chan float64, error) {
	f.ampC = make(chan float64, 64)

	mgCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, waveform.WrapError(waveform.CodeRecordingFailed, err,
			"failed to initialize audio context")
	}

	devCnf := malgo.DefaultDeviceConfig(malgo.Capture)
	devCnf.Capture.Format = malgo.FormatS16
	devCnf.Capture.Channels = uint32(f.conf.Channels)
	devCnf.SampleRate = uint32(f.conf.SampleRate)

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, raw []byte, framecount uint32) {
			amp := PeakAmplitude(BytesToInt16(raw))
			// Drop the tick rather than stall the capture callback.
			_ = channels.SendNonBlock(f.ampC, amp)
		},
	}

	mgDevice, err := malgo.InitDevice(mgCtx.Context, devCnf, callbacks)
	if err != nil {
		uninitializeContext(mgCtx)
		return nil, waveform.WrapError(waveform.CodeMicrophoneDenied, err,
			"failed to open capture device")
	}

	f.mgCtx = mgCtx
	f.mgDevice = mgDevice

	return f.ampC, nil
}

func (f *feed) Start(ctx context.Context) error {
	if f.mgDevice == nil {
		return waveform.NewError(waveform.CodeRecordingFailed,
			"capture device not allocated; call Capture first")
	}

	if f.mgDevice.IsStarted() {
		return nil
	}

	if err := f.mgDevice.Start(); err != nil {
		return waveform.WrapError(waveform.CodeRecordingFailed, err,
			"failed to start capture device")
	}

	return nil
}

func (f *feed) Stop(ctx context.Context) error {
	if f.mgDevice == nil {
		return nil
	}

	if err := f.mgDevice.Stop(); err != nil {
		return waveform.WrapError(waveform.CodeRecordingFailed, err,
			"failed to stop capture device")
	}

	return nil
}

func (f *feed) Toggle(ctx context.Context) error {
	if f.mgDevice == nil {
		return waveform.NewError(waveform.CodeRecordingFailed,
			"capture device not allocated; call Capture first")
	}

	if f.mgDevice.IsStarted() {
		return f.Stop(ctx)
	}

	return f.Start(ctx)
}

func (f *feed) IsStarted() bool {
	if f.mgDevice == nil {
		return false
	}

	return f.mgDevice.IsStarted()
}

func (f *feed) Dealloc(ctx context.Context) {
	if f.mgDevice == nil {
		return
	}

	f.mgDevice.Uninit()
	f.mgCtx.Free()
	f.mgDevice = nil
	f.mgCtx = nil

	close(f.ampC)
}

// Info describes an available capture device.
type Info struct {
	Name        string
	IsDefault   bool
	FormatCount int
	Formats     []string
}

func malgoDeviceInfoToInfo(mdi malgo.DeviceInfo) Info {
	formats := make([]string, len(mdi.Formats))
	for i, mf := range mdi.Formats {
		formats[i] = fmt.Sprintf("(SampleSizeBytes: %d, Channels: %d, SampleRate: %d)",
			malgo.SampleSizeInBytes(mf.Format), mf.Channels, mf.SampleRate)
	}

	return Info{
		Name:        mdi.Name(),
		IsDefault:   mdi.IsDefault != 0,
		FormatCount: int(mdi.FormatCount),
		Formats:     formats,
	}
}

func uninitializeContext(devCtx *malgo.AllocatedContext) {
	if devCtx == nil {
		return
	}

	if err := devCtx.Uninit(); err != nil {
		slog.Error("failed to uninitialize audio context", "error", err)
	}
	devCtx.Free()
}
