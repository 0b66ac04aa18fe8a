package duckdb

import (
	"fmt"
	"io"
	"os"
	"time"
)

// FileFingerprint identifies the input a forest was built from. Two
// fingerprints describe the same input when path, size, and modification
// time all agree.
type FileFingerprint struct {
	Path       string
	Size       int64
	ModTime    time.Time
	Compressed bool // gzip magic bytes at the start of the file
}

// Same reports whether fp and other describe the same input file.
// Standard input never matches.
func (fp FileFingerprint) Same(other FileFingerprint) bool {
	if fp.Path == "-" || other.Path == "-" {
		return false
	}
	return fp.Path == other.Path && fp.Size == other.Size && fp.ModTime.Equal(other.ModTime)
}

// StatFile fingerprints the GFF file at path. Standard input ("-") has
// no size or modification time.
func StatFile(path string) (FileFingerprint, error) {
	if path == "-" {
		return FileFingerprint{Path: path}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return FileFingerprint{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return FileFingerprint{}, fmt.Errorf("stat %s: %w", path, err)
	}

	magic := make([]byte, 2)
	n, err := io.ReadFull(f, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileFingerprint{}, fmt.Errorf("read %s: %w", path, err)
	}

	return FileFingerprint{
		Path:       path,
		Size:       info.Size(),
		ModTime:    info.ModTime().UTC().Truncate(time.Microsecond),
		Compressed: n == 2 && magic[0] == 0x1f && magic[1] == 0x8b,
	}, nil
}
