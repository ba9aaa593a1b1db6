// Package cmdline splits raw command lines into argument vectors.
package cmdline

import (
	"strings"
)

// Split separates line on delim. Runs of the delimiter produce no empty
// tokens, so a nil result means the line held no arguments at all.
func Split(line string, delim byte) []string {
	var args []string
	for _, tok := range strings.Split(line, string(delim)) {
		if tok != "" {
			args = append(args, tok)
		}
	}
	return args
}
