package internal

import "github.com/fatih/color"

// stdoutColor is fatih/color's own verdict on stdout (a terminal, TERM not
// dumb, NO_COLOR unset), taken before ConfigureColor overwrites it.
var stdoutColor = !color.NoColor

// ColorEnabled decides whether output is styled, given an environment lookup
// and whether stdout supports color. CLICOLOR_FORCE (not "0") turns color on
// unconditionally. Otherwise NO_COLOR or CLICOLOR=0 turn it off, and it is on
// only when stdout supports it.
func ColorEnabled(getenv func(string) string, terminal bool) bool {
	if v := getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		return true
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	return getenv("CLICOLOR") != "0" && terminal
}

// ConfigureColor sets the process-wide fatih/color switch from the environment.
func ConfigureColor(getenv func(string) string) {
	color.NoColor = !ColorEnabled(getenv, stdoutColor)
}
