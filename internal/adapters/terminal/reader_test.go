package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestBufferedReader_ReadLine(t *testing.T) {
	var out bytes.Buffer
	r := NewBufferedReader(strings.NewReader("ls -l\r\nsl\nlast"), &out)

	want := []string{"ls -l", "sl", "last"}
	for i, w := range want {
		got, err := r.ReadLine("$ ")
		if err != nil {
			t.Fatalf("ReadLine() #%d unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("ReadLine() #%d = %q, want %q", i, got, w)
		}
	}

	if _, err := r.ReadLine("$ "); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end of input error = %v, want io.EOF", err)
	}
	if got := out.String(); got != strings.Repeat("$ ", 4) {
		t.Errorf("prompts written = %q, want four prompts", got)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
}

func TestBufferedReader_EmptyInput(t *testing.T) {
	r := NewBufferedReader(strings.NewReader(""), io.Discard)
	if _, err := r.ReadLine(""); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() on empty input error = %v, want io.EOF", err)
	}
}

func TestBufferedReader_ReadFailure(t *testing.T) {
	r := NewBufferedReader(failingReader{}, io.Discard)
	_, err := r.ReadLine("")
	if !errors.Is(err, ErrInputRead) {
		t.Errorf("ReadLine() error = %v, want %v", err, ErrInputRead)
	}
	if errors.Is(err, io.EOF) {
		t.Error("read failure must not look like end of input")
	}
}
