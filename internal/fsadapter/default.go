package fsadapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Default is the FS implementation backed by the standard library. It is
// the only adapter this repository ships; platform-specific bulk-stat
// adapters (POSIX getattrlistbulk and friends) are not implemented.
type Default struct{}

// New returns the default, stdlib-backed FS adapter.
func New() Default {
	return Default{}
}

func (Default) ExpandUser(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

func (Default) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (Default) StatPath(path string) (Stat, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Stat{}, err
	}
	return statFromInfo(info), nil
}

// Scandir enumerates path's immediate children via os.ReadDir, lazily
// stat'ing each entry on demand. A per-entry stat failure surfaces as a
// nil-Stat Entry rather than as an error from the returned function, so the
// caller can count it as an access error and keep going.
func (Default) Scandir(ctx context.Context, path string) (func() (Entry, bool, error), error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	i := 0
	next := func() (Entry, bool, error) {
		for i < len(dirEntries) {
			select {
			case <-ctx.Done():
				return Entry{}, false, ctx.Err()
			default:
			}
			de := dirEntries[i]
			i++
			name := de.Name()
			full := filepath.Join(path, name)
			info, err := de.Info()
			if err != nil {
				return Entry{Name: name, Path: full, Stat: nil}, true, nil
			}
			st := statFromInfo(info)
			return Entry{Name: name, Path: full, Stat: &st}, true, nil
		}
		return Entry{}, false, nil
	}
	return next, nil
}
