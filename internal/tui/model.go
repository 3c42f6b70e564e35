// Package tui implements the interactive terminal visualizer. It is a
// render sink: frames arrive over a channel and are drawn as styled bars.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linksound/wavekit/internal/style"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/linksound/wavekit/pkg/uictl"
)

// FrameMsg delivers a freshly rendered waveform frame.
type FrameMsg waveform.Frame

// feedClosedMsg signals that the frame channel was closed.
type feedClosedMsg struct{}

// Controls wires the visualizer to the session and the capture hardware.
type Controls struct {
	Session *waveform.Session
	Device  uictl.Knob
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	recordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model for the live visualizer.
type Model struct {
	keys     KeyMap
	help     help.Model
	controls Controls
	frames   <-chan waveform.Frame

	frame  waveform.Frame
	width  int
	height int
}

// New creates a visualizer consuming frames from the given channel.
func New(controls Controls, frames <-chan waveform.Frame) Model {
	m := Model{
		keys:     DefaultKeyMap(),
		help:     help.New(),
		controls: controls,
		frames:   frames,
		width:    80,
		height:   12,
	}
	if controls.Session != nil {
		m.frame = controls.Session.Frame()
	}
	return m
}

// Init starts waiting for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

// Update handles key presses, resizes and incoming frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = waveform.Frame(msg)
		return m, waitForFrame(m.frames)

	case feedClosedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess := m.controls.Session

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.deviceOff()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if sess.State() == waveform.StateRecording {
			sess.Stop()
			m.deviceOff()
		} else {
			sess.Start()
			m.deviceOn()
		}

	case key.Matches(msg, m.keys.Cancel):
		sess.Cancel()
		m.deviceOff()

	case key.Matches(msg, m.keys.Reset):
		sess.Reset()

	case key.Matches(msg, m.keys.NextStyle):
		m.cycleStyle(1)

	case key.Matches(msg, m.keys.PrevStyle):
		m.cycleStyle(-1)

	case key.Matches(msg, m.keys.HeightMode):
		cfg := sess.Config()
		modes := waveform.HeightModes()
		cfg.HeightMode = modes[(int(cfg.HeightMode)+1)%len(modes)]
		_ = sess.ApplyConfiguration(cfg)

	case key.Matches(msg, m.keys.LayoutMode):
		cfg := sess.Config()
		modes := waveform.LayoutModes()
		cfg.LayoutMode = modes[(int(cfg.LayoutMode)+1)%len(modes)]
		_ = sess.ApplyConfiguration(cfg)
	}

	m.frame = sess.Frame()

	return m, nil
}

func (m Model) cycleStyle(delta int) {
	sess := m.controls.Session
	tokens := style.Tokens()
	idx := (int(sess.Config().Style) + delta + len(tokens)) % len(tokens)
	_ = sess.ApplyStyle(tokens[idx])
}

func (m Model) deviceOn() {
	if m.controls.Device != nil {
		m.controls.Device.On()
	}
}

func (m Model) deviceOff() {
	if m.controls.Device != nil {
		m.controls.Device.Off()
	}
}

// View renders the header, the waveform and the help footer.
func (m Model) View() string {
	sess := m.controls.Session
	cfg := sess.Config()

	state := sess.State()
	stateLabel := statusStyle.Render(state.String())
	if state == waveform.StateRecording {
		stateLabel = recordStyle.Render("● recording")
	}

	header := fmt.Sprintf("%s  %s  %s",
		titleStyle.Render("wavekit"),
		stateLabel,
		statusStyle.Render(fmt.Sprintf("style=%s height=%s layout=%s",
			cfg.Style, cfg.HeightMode, cfg.LayoutMode)),
	)

	waveHeight := m.height - 3
	if waveHeight < 1 {
		waveHeight = 1
	}

	return header + "\n" +
		Render(m.frame, m.width, waveHeight) + "\n" +
		m.help.View(m.keys)
}

func waitForFrame(frames <-chan waveform.Frame) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-frames
		if !ok {
			return feedClosedMsg{}
		}
		return FrameMsg(frame)
	}
}
