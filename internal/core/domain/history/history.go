/*
Package history defines core domain entities related to command history.
*/
package history

// Capacity is the number of lines retained by the history log.
const Capacity = 20

/*
Entry is one retained input line with its 1-based position in the log,
oldest entry first.
*/
type Entry struct {
	Number int
	Line   string
}
