// Package lookpath resolves program names to candidate executable paths.
//
// Unlike exec.LookPath it does not stop at the first match: every
// executable found across $PATH is reported so the caller can reject
// names that refer to more than one binary.
package lookpath

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Resolve maps a program name to the executable paths it may refer to.
// A name containing a path separator is probed as-is and yields at most
// one candidate. Otherwise each directory in $PATH is probed in order and
// all executable matches are returned, duplicate entries removed.
func Resolve(name string) []string {
	if name == "" {
		return nil
	}

	if strings.ContainsRune(name, os.PathSeparator) {
		abs, err := filepath.Abs(name)
		if err != nil || !isExecutable(abs) {
			return nil
		}
		return []string{abs}
	}

	var (
		paths []string
		seen  = make(map[string]struct{})
	)
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			// an empty $PATH entry means the current directory
			dir = "."
		}
		p, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		if isExecutable(p) {
			paths = append(paths, p)
		}
	}
	return paths
}

// isExecutable reports whether path is a regular file the current user
// may execute.
func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
