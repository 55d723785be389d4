//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// Only path separators and NUL are not allowed in file names here.
const badFileNameChars = ""

func reservedFileName(string) bool {
	return false
}

func colorConsole(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
