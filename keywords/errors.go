package keywords

import "fmt"

// A ConfigError reports a load-time integrity failure: a malformed override
// source line, or a catalogue ordering violation. It is not retried or
// recovered; callers typically treat it as fatal.
type ConfigError struct {
	File string // override source name, empty for catalogue violations
	Line int    // 1-based, zero when no source position applies
	Msg  string
}

func (e *ConfigError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("keywords: %s:%d: %s", e.File, e.Line, e.Msg)
	}
	return "keywords: " + e.Msg
}
