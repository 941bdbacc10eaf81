// Package tui provides the terminal mission board for missionctl.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal    Mode = iota // Default navigation mode
	ModeSearch                // Search input mode
	ModeInputName             // Name input mode (for new mission)
	ModeConfirm               // Delete confirmation mode
	ModeHelp                  // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeInputName:
		return "input_name"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeSearch, ModeInputName:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
