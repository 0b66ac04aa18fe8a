package gff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readerContent = "##gff-version 3\r\nchr1\tsrc\tgene\t1\t20\t.\t+\t.\tID=G\n"

func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
	return lines
}

func TestReader_Plain(t *testing.T) {
	r, err := NewReader(strings.NewReader(readerContent))
	require.NoError(t, err)

	lines := readAll(t, r)
	require.Len(t, lines, 2)
	assert.Equal(t, "##gff-version 3", lines[0], "carriage return trimmed")
	assert.Equal(t, 2, r.LineNumber())
	assert.NoError(t, r.Close())
}

func TestReader_Gzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(readerContent))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "sample.gff3.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	lines := readAll(t, r)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "chr1\tsrc\tgene"))
}

func TestReader_Empty(t *testing.T) {
	r, err := NewReader(strings.NewReader(""))
	require.NoError(t, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.gff3"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}
