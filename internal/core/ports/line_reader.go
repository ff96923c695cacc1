package ports

// LineReader reads one line of user input per call.
type LineReader interface {
	// ReadLine shows prompt and returns the line without its newline.
	// It returns io.EOF once input is exhausted.
	ReadLine(prompt string) (string, error)
	Close() error
}
