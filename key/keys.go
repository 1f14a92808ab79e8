// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Motion Preferences - these keys govern transition animations and their deferred side effects.
const (
	MotionReduce            = "motion.reduce"
	MotionPanelTransitionMs = "motion.panel_transition_ms"
)

// Scrubber Interaction - these keys define the seek/drag behavior of the timeline control.
const (
	ScrubStep = "scrub.step"
)

// Announcements - these keys configure the assistive announcement channel.
const (
	AnnounceEnable = "announce.enable"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIShowHelp  = "tui.show_help"
	TUIMouse     = "tui.mouse"
	TUIRTLArrows = "tui.rtl_arrows"
)

// Media Playback - these keys maintain the state and configuration for the external playback engine.
const (
	Player = "player.default"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
