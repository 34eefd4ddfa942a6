package event

import "strings"

// Level is the severity of a log event, ordered from most to least verbose.
type Level int

const (
	Verbose Level = iota
	Debug
	Information
	Warning
	Error
	Fatal
)

func (l Level) String() string {
	switch l {
	case Verbose:
		return "Verbose"
	case Debug:
		return "Debug"
	case Information:
		return "Information"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	default:
		return "Information"
	}
}

// ParseLevel converts a level name or common abbreviation to a Level.
// Unknown strings default to Information.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "verbose", "trace", "vrb", "trc":
		return Verbose
	case "debug", "dbg":
		return Debug
	case "warning", "warn", "wrn":
		return Warning
	case "error", "err":
		return Error
	case "fatal", "panic", "ftl":
		return Fatal
	default:
		return Information
	}
}
