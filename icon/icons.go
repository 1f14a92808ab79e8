package icon

// Icon identifies a single UI symbol in the global registry.
type Icon int

// Control Bar Symbols - these identifiers map to the interactive controls and status feedback of the bar.
const (
	Play Icon = iota
	Pause
	Muted
	Unmuted
	Fullscreen
	Windowed
	Settings
	Scrubber
	Fail
	Success
)

// icons is the global registry binding each Icon identifier to its multi-variant visual definitions.
var icons = map[Icon]*iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▶‿▶)",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(–‿–)",
		squares: "⏸",
	},
	Muted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "mx",
		kaomoji: "(x_x)",
		squares: "🔇",
	},
	Unmuted: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "(^o^)",
		squares: "🔊",
	},
	Fullscreen: {
		emoji:   "⛶",
		nerd:    "",
		plain:   "[ ]",
		kaomoji: "(⌐■_■)",
		squares: "⛶",
	},
	Windowed: {
		emoji:   "🗗",
		nerd:    "",
		plain:   "[-]",
		kaomoji: "(._.)",
		squares: "🗗",
	},
	Settings: {
		emoji:   "⚙️",
		nerd:    "",
		plain:   "*",
		kaomoji: "(⚙‿⚙)",
		squares: "⚙",
	},
	Scrubber: {
		emoji:   "⏱️",
		nerd:    "",
		plain:   "|--",
		kaomoji: "(→_→)",
		squares: "⏱",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(￣▽￣)",
		squares: "🟩",
	},
}
