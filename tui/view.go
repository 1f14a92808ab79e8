// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar-cli/mediabar/color"
	"github.com/mediabar-cli/mediabar/controlbar"
	"github.com/mediabar-cli/mediabar/icon"
	"github.com/mediabar-cli/mediabar/key"
	"github.com/mediabar-cli/mediabar/style"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)

	focusedControlStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(color.Orange).
				Foreground(color.Orange).
				Padding(0, 1)

	idleControlStyle = lipgloss.NewStyle().Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color.Purple).
			Padding(0, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case barState:
		output = b.viewBar()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " Starting playback engine...",
		},
	)
}

func (b *statefulBubble) viewBar() string {
	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Truncate(b.width)(style.Fg(color.Purple)(b.options.Title)),
		"",
		b.renderControls(),
		"",
		b.renderTimeline(),
	}

	if b.panelVisible {
		lines = append(lines, "", b.renderPanel())
	}

	return b.renderLines(viper.GetBool(key.TUIShowHelp), lines)
}

// renderControls draws the control row in traversal order, underlining the
// control that holds the roving focus cursor.
func (b *statefulBubble) renderControls() string {
	glyphs := map[controlbar.Control]string{
		controlbar.ControlPlayPause:  icon.Get(iconFor(b.playingVisual, icon.Pause, icon.Play)),
		controlbar.ControlMute:       icon.Get(iconFor(b.mutedVisual, icon.Muted, icon.Unmuted)),
		controlbar.ControlScrubber:   icon.Get(icon.Scrubber),
		controlbar.ControlSettings:   icon.Get(icon.Settings),
		controlbar.ControlFullscreen: icon.Get(iconFor(b.fullscreenVisual, icon.Windowed, icon.Fullscreen)),
	}

	rendered := make([]string, 0, len(b.bar.Controls()))
	for _, c := range b.bar.Controls() {
		glyph := glyphs[c]
		if c == controlbar.ControlSettings && b.expandedVisual {
			glyph += " ▾"
		}

		if c == b.focusedVisual {
			rendered = append(rendered, focusedControlStyle.Render(glyph))
		} else {
			rendered = append(rendered, idleControlStyle.Render(glyph))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

// renderTimeline draws the scrubber slider and the current/total time display.
func (b *statefulBubble) renderTimeline() string {
	percent := 0.0
	if b.sliderMax > 0 {
		percent = b.sliderValue / b.sliderMax
	}

	timeText := style.Faint(fmt.Sprintf("%s / %s", b.timeCurrent, b.timeTotal))
	return b.progressC.ViewAs(percent) + "  " + timeText
}

// renderPanel draws the settings disclosure panel content.
func (b *statefulBubble) renderPanel() string {
	loop := "off"
	if b.loop {
		loop = "on"
	}

	lines := []string{
		style.Bold("Settings"),
		fmt.Sprintf("Speed  %.2fx  %s", b.speed, style.Faint("(+ / -)")),
		fmt.Sprintf("Loop   %s  %s", loop, style.Faint("(r)")),
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

func iconFor(condition bool, whenTrue, whenFalse icon.Icon) icon.Icon {
	if condition {
		return whenTrue
	}
	return whenFalse
}
