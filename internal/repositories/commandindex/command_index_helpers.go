package commandindex

import "os"

// addEntries records the names of entries not already indexed and returns how many were new.
// A name shadowed by an earlier directory keeps its first position.
func (c *CommandIndex) addEntries(entries []os.DirEntry) int {
	added := 0
	for _, entry := range entries {
		name := entry.Name()
		if _, exists := c.set[name]; exists {
			continue
		}
		c.set[name] = struct{}{}
		c.names = append(c.names, name)
		added++
	}
	return added
}
