package config

import (
	"os"
	"strings"
)

const badFileName = "_bad_file_name_"

// CleanFileName removes characters not allowed in file names on this platform
// and leading dots, so the name never produces hidden or relative file.
// Names reserved by the platform are prefixed with underscore.
func CleanFileName(in string) string {
	bad := badFileNameChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(bad, sym) {
			return -1
		}
		return sym
	}, in), ".")
	switch {
	case len(out) == 0:
		return badFileName
	case reservedFileName(out):
		return "_" + out
	}
	return out
}
