package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linksound/wavekit/internal/audio"
	"github.com/linksound/wavekit/internal/config"
	"github.com/linksound/wavekit/internal/logger"
	"github.com/linksound/wavekit/internal/server"
	"github.com/linksound/wavekit/internal/style"
	"github.com/linksound/wavekit/internal/tui"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/linksound/wavekit/pkg/channels"
)

// CLI defines the wavekit command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Launch the live waveform visualizer"`

	// Subcommands
	Devices DevicesCmd `cmd:"" help:"List available audio capture devices"`
	Styles  StylesCmd  `cmd:"" help:"List style presets with color swatches"`
	Render  RenderCmd  `cmd:"" help:"Render a WAV file as a static waveform"`
}

// TUICmd is the default command that runs the live visualizer.
type TUICmd struct {
	Style      string  `flag:"" default:"default" help:"Style preset name"`
	HeightMode string  `flag:"" name:"height-mode" default:"symmetric" help:"Height mode: symmetric, random, ascending, descending, highlow, lowhigh, uniform"`
	Layout     string  `flag:"" default:"horizontal" help:"Layout mode: symmetric, leftonly, rightonly, horizontal, circular"`
	Bars       int     `flag:"" default:"0" help:"Bar count (0 uses the preset's count)"`
	Smoothing  float64 `flag:"" default:"0" help:"Amplitude smoothing factor in (0,1] (0 uses the default)"`
	Monitor    bool    `flag:"" help:"Serve the read-only HTTP monitor API"`
}

// Run executes the TUI command.
//
//nolint:funlen // CLI command with multiple setup steps
func (c *TUICmd) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg)

	waveCfg, err := c.waveformConfig()
	if err != nil {
		return err
	}

	// input

	feed := audio.NewFeed(&audio.FeedConfig{
		SampleRate: cfg.SampleRate,
		Channels:   cfg.Channels,
	})

	ampC, err := feed.Capture(ctx)
	if err != nil {
		return fmt.Errorf("failed to start audio capture: %w", err)
	}

	// always dealloc when we're done
	defer func() {
		feed.Dealloc(ctx)
		log.Debug("Audio device deallocated")
	}()

	// Fan frames out: one subscriber paints the TUI, the other feeds the
	// monitor API so HTTP reads stay off the session's lock.
	tuiFrames := make(chan waveform.Frame, 8)
	monitorFrames := make(chan waveform.Frame, 8)

	bc := channels.NewBroadcaster[waveform.Frame]()
	bc.Subscribe(tuiFrames)
	if c.Monitor {
		bc.Subscribe(monitorFrames)
	}

	frameC, err := bc.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to start frame broadcaster: %w", err)
	}

	sess, err := waveform.NewSession(waveCfg, waveform.SinkFunc(func(f waveform.Frame) {
		// Drop on backpressure rather than block inside the session.
		_ = channels.SendNonBlock(frameC, f)
	}))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if c.Monitor {
		srv := server.New(cfg, log, sess)
		srv.Watch(monitorFrames)

		go func() {
			if err := srv.Run(); err != nil {
				log.Error("Monitor server error", "error", err)
			}
		}()
	}

	// Amplitude pump: capture callback -> session.
	wg := sync.WaitGroup{}
	wg.Go(func() {
		pumpAmplitudes(sess, ampC)
	})

	ctrls := tui.Controls{
		Session: sess,
		Device:  feedKnob{ctx: ctx, feed: feed},
	}

	p := tea.NewProgram(tui.New(ctrls, tuiFrames))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	// Dealloc closes the amplitude channel, so the pump drains and exits
	// before we wait on it. The deferred Dealloc is then a no-op.
	feed.Dealloc(ctx)
	wg.Wait()

	cancel()
	bc.Wait()

	fmt.Println("\nfinished. bye!")

	return nil
}

// waveformConfig builds the session configuration from the preset plus the
// command's explicit overrides.
func (c *TUICmd) waveformConfig() (waveform.Config, error) {
	tok, err := waveform.ParseStyle(c.Style)
	if err != nil {
		return waveform.Config{}, err
	}

	cfg := waveform.ConfigForStyle(tok)

	cfg.HeightMode, err = waveform.ParseHeightMode(c.HeightMode)
	if err != nil {
		return waveform.Config{}, err
	}

	cfg.LayoutMode, err = waveform.ParseLayoutMode(c.Layout)
	if err != nil {
		return waveform.Config{}, err
	}

	if c.Bars > 0 {
		cfg.BarCount = c.Bars
	}

	if c.Smoothing > 0 {
		cfg.Smoothing = c.Smoothing
	}

	return cfg, nil
}

// DevicesCmd lists available audio capture devices.
type DevicesCmd struct{}

// Run executes the devices command.
func (dcmd *DevicesCmd) Run() error {
	slog.Info("Enumerating audio devices...")

	feed := audio.NewFeed(nil)
	devices, err := feed.EnumerateDevices(context.Background())
	if err != nil {
		return fmt.Errorf("failed to enumerate audio devices: %w", err)
	}

	for _, dev := range devices {
		slog.Info("Audio Device",
			"name", dev.Name,
			"isDefault", dev.IsDefault,
			"formatCount", dev.FormatCount,
			"formats", dev.Formats,
		)
	}

	return nil
}

// StylesCmd lists the style presets.
type StylesCmd struct{}

// Run executes the styles command.
//
//nolint:unparam // error return required by Kong interface
func (scmd *StylesCmd) Run() error {
	for _, tok := range style.Tokens() {
		p := style.Resolve(tok)

		swatch := ""
		for _, stop := range p.ColorStops {
			swatch += lipgloss.NewStyle().Foreground(stop).Render("██")
		}

		fmt.Printf("%-16s %s  bars=%d\n", p.Name, swatch, p.BarCount)
	}

	return nil
}

// RenderCmd renders a WAV file as a static waveform snapshot.
type RenderCmd struct {
	File       string `arg:"" required:"" help:"Path to WAV file"`
	Style      string `flag:"" default:"default" help:"Style preset name"`
	HeightMode string `flag:"" name:"height-mode" default:"symmetric" help:"Height mode"`
	Layout     string `flag:"" default:"horizontal" help:"Layout mode"`
	Bars       int    `flag:"" default:"0" help:"Bar count (0 uses the preset's count)"`
	Width      int    `flag:"" default:"80" help:"Output width in characters"`
	Height     int    `flag:"" default:"12" help:"Output height in rows"`
	Window     int    `flag:"" default:"0" help:"PCM frames per amplitude sample (0 uses the default)"`
}

// Run executes the render command.
func (rcmd *RenderCmd) Run() error {
	src, err := audio.OpenFile(rcmd.File, rcmd.Window)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	tuiCfg := TUICmd{
		Style:      rcmd.Style,
		HeightMode: rcmd.HeightMode,
		Layout:     rcmd.Layout,
		Bars:       rcmd.Bars,
	}

	cfg, err := tuiCfg.waveformConfig()
	if err != nil {
		return err
	}

	sess, err := waveform.NewSession(cfg, nil)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	sess.Start()
	for _, amp := range src.Amplitudes() {
		sess.UpdateAmplitude(amp)
	}
	sess.Stop()

	fmt.Println(tui.Render(sess.Frame(), rcmd.Width, rcmd.Height))

	return nil
}

func main() {
	// Set up text-based logger for CLI output
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}

// pumpAmplitudes feeds captured amplitudes into the session until the
// amplitude channel closes.
func pumpAmplitudes(sess *waveform.Session, ampC <-chan float64) {
	for amp := range ampC {
		sess.UpdateAmplitude(amp)
	}
}

// feedKnob adapts the capture feed to the TUI's on/off control.
type feedKnob struct {
	ctx  context.Context
	feed audio.Feed
}

func (fk feedKnob) Read() bool {
	return fk.feed.IsStarted()
}

func (fk feedKnob) On() {
	if err := fk.feed.Start(fk.ctx); err != nil {
		slog.Error("feedKnob On error", "error", err)
	}
}

func (fk feedKnob) Off() {
	if err := fk.feed.Stop(fk.ctx); err != nil {
		slog.Error("feedKnob Off error", "error", err)
	}
}

func (fk feedKnob) Toggle() {
	if err := fk.feed.Toggle(fk.ctx); err != nil {
		slog.Error("feedKnob Toggle error", "error", err)
	}
}
