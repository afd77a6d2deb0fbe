package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode selects how formatting progress is displayed: a live Bubble Tea
// view, plain per-file lines, or whichever fits the terminal.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return uiModeAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// wantsTUI resolves auto to the stdout TTY check; a piped run falls back to
// plain output so the squawks stay greppable.
func (m uiMode) wantsTUI() bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
