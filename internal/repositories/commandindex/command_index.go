package commandindex

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

/*
CommandIndex holds every directory-entry name found on the search path.

It is filled once by Build and only read afterwards, so it needs no locking.
Entries are not filtered by type or permission: the index only feeds
correction suggestions, never the spawn path.
*/
type CommandIndex struct {
	names []string
	set   map[string]struct{}
}

// Build scans each directory in dirs, in order, and indexes its direct entries.
// Directories that cannot be read are skipped.
func Build(dirs []string, logger *log.Logger) ports.CommandIndex {
	idx := &CommandIndex{set: make(map[string]struct{})}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug("skipping unreadable path entry", "dir", dir, "err", err)
			continue
		}
		added := idx.addEntries(entries)
		logger.Debug("indexed path entry", "dir", dir, "entries", len(entries), "new", added)
	}

	logger.Debug("command index built", "dirs", len(dirs), "commands", len(idx.names))
	return idx
}

// SearchPath splits a PATH-style value into its directories, dropping empty elements.
func SearchPath(pathValue string, extra ...string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(pathValue) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return append(dirs, extra...)
}

// Contains reports whether name was seen in any scanned directory.
func (c *CommandIndex) Contains(name string) bool {
	_, ok := c.set[name]
	return ok
}

// Names returns the indexed names in first-seen order.
func (c *CommandIndex) Names() []string {
	return c.names
}

func (c *CommandIndex) Len() int {
	return len(c.names)
}
