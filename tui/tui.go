// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar-cli/mediabar/controlbar"
	"github.com/mediabar-cli/mediabar/key"
	"github.com/spf13/viper"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Target is the media file or URL handed to the playback engine.
	Target string

	// Title is the human-readable media title shown in the bar and the
	// engine's window.
	Title string

	// Controls lists the present controls in visual order. Defaults to the
	// full set when empty.
	Controls []controlbar.Control
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	if len(options.Controls) == 0 {
		options.Controls = []controlbar.Control{
			controlbar.ControlPlayPause,
			controlbar.ControlMute,
			controlbar.ControlScrubber,
			controlbar.ControlSettings,
			controlbar.ControlFullscreen,
		}
	}

	bubble := newBubble(options)

	teaOptions := []tea.ProgramOption{tea.WithAltScreen()}
	if viper.GetBool(key.TUIMouse) {
		teaOptions = append(teaOptions, tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(bubble, teaOptions...)
	bubble.program = program

	_, err := program.Run()
	bubble.teardown()
	return err
}
