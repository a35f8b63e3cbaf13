package domain

import (
	"strings"
	"time"
)

// BuildInfo records a successful build tool run for a settings file.
type BuildInfo struct {
	Key string `json:"key,omitempty"`
	// InputHash fingerprints the settings file and every file it lists.
	InputHash string    `json:"input_hash,omitempty"`
	Dist      string    `json:"dist,omitempty"`
	ExitCode  int       `json:"exit_code"`
	Timestamp time.Time `json:"timestamp"`
}

// Command is an external process invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env holds extra environment variables layered over the process environment.
	Env map[string]string
}

// String returns the command line joined by spaces.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}
