package gff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// LineSource supplies raw feature lines one at a time. Next returns io.EOF
// once input is exhausted.
type LineSource interface {
	Next() (string, error)
}

// Reader reads lines from a plain or gzipped GFF file.
type Reader struct {
	scanner    *bufio.Scanner
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// Open creates a Reader for the file at path; "-" reads stdin.
// Gzipped input is detected from its magic bytes.
func Open(path string) (*Reader, error) {
	if path == "-" {
		return NewReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open GFF file: %w", err)
	}

	r, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.file = file
	return r, nil
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	rd := &Reader{}

	var src io.Reader = br
	// Check for gzip magic number (0x1f, 0x8b)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		rd.gzipReader = gz
		src = gz
	}

	rd.scanner = bufio.NewScanner(src)
	// Increase buffer size for long attribute columns
	buf := make([]byte, 0, 64*1024)
	rd.scanner.Buffer(buf, 1024*1024)
	return rd, nil
}

// Next returns the next line without its line terminator.
func (r *Reader) Next() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("scan GFF: %w", err)
		}
		return "", io.EOF
	}
	r.lineNumber++
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

// LineNumber returns the number of lines read so far.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// Close releases the underlying file and decompressor.
func (r *Reader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
