package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// LineSource provides an iterator over raw input lines.
// Implementations must be safe for sequential access (not concurrent).
type LineSource interface {
	// Next returns the next line. Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// ReaderSource implements LineSource over an io.Reader.
type ReaderSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
	source  string
	line    int
}

// NewReaderSource creates a LineSource reading from r. The label is used as
// the Source of each returned line.
func NewReaderSource(r io.Reader, label string) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ReaderSource{scanner: scanner, source: label}
}

// NewFileSource opens path and returns a LineSource over its lines.
func NewFileSource(path string) (*ReaderSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	s := NewReaderSource(f, path)
	s.closer = f
	return s, nil
}

// Next returns the next line, or io.EOF once the reader is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.scanner.Scan() {
		s.line++
		return &Line{Raw: s.scanner.Text(), Source: s.source, Num: s.line}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.source, err)
	}
	return nil, io.EOF
}

// Close closes the underlying file, if any.
func (s *ReaderSource) Close() error {
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}

// SliceSource implements LineSource over lines already held in memory.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource creates a LineSource that yields the given lines in order.
func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Next returns the next line, or io.EOF after the last one.
func (s *SliceSource) Next(ctx context.Context) (*Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.lines) {
		return nil, io.EOF
	}
	s.pos++
	return &Line{Raw: s.lines[s.pos-1], Source: "input", Num: s.pos}, nil
}

// Close is a no-op.
func (s *SliceSource) Close() error { return nil }
