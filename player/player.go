// Package player defines a unified abstraction layer for media playback engines.
// The architecture supports multiple backends, with the primary implementation targeting 'mpv' via its JSON-IPC interface.
package player

// Player encapsulates the required capabilities for a media playback backend.
type Player interface {
	// Open starts the playback engine with the given media target and window title.
	Open(target string, title string) error

	// Resume requests playback. The request may be refused by the engine
	// or the environment; a non-nil error reports the refusal.
	Resume() error

	// Pause suspends playback.
	Pause() error

	// Seek transitions the playback position to a specific absolute timestamp in seconds.
	Seek(seconds float64) error

	// SetMuted mutes or unmutes audio output.
	SetMuted(muted bool) error

	// SetFullscreen enters or leaves fullscreen presentation.
	SetFullscreen(fullscreen bool) error

	// SetProperty sets an arbitrary engine property (playback speed, loop mode).
	SetProperty(property string, value interface{}) error

	// TimePos retrieves the current absolute playback position in seconds.
	TimePos() (float64, error)

	// Duration retrieves the total temporal length of the active media file in seconds.
	Duration() (float64, error)

	// Paused retrieves the current suspension state of the playback engine.
	Paused() (bool, error)

	// IsRunning validates the liveness of the underlying playback process or handler.
	IsRunning() bool

	// Socket retrieves the identifier for the Inter-Process Communication (IPC) channel.
	Socket() string

	// Wait returns a channel that is closed when the playback session terminates.
	Wait() <-chan struct{}

	// Close terminates the playback engine and releases all associated system resources.
	Close() error
}
