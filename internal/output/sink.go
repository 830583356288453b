package output

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Sink receives rendered report lines.
type Sink interface {
	WriteLine(line string) error
	Close() error
}

// ConsoleSink writes lines unchanged, styling included.
type ConsoleSink struct {
	w io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) WriteLine(line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// Close is a no-op; the console stream is owned by the process.
func (s *ConsoleSink) Close() error {
	return nil
}

// FileSink appends lines to a file with every color sequence removed.
type FileSink struct {
	path string
	file *os.File
}

// OpenFileSink opens path for appending, creating it when needed.
func OpenFileSink(path string) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	return &FileSink{path: path, file: file}, nil
}

func (s *FileSink) WriteLine(line string) error {
	if _, err := io.WriteString(s.file, pterm.RemoveColorFromString(line)+"\n"); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (s *FileSink) Path() string {
	return s.path
}
