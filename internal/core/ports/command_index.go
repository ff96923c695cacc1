package ports

/*
CommandIndex is the read-only catalog of names visible across the search path.
It feeds fuzzy correction only; spawning resolves the path on its own.
*/
type CommandIndex interface {
	Contains(name string) bool
	// Names returns every indexed name in enumeration order.
	Names() []string
	Len() int
}
