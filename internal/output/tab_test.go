package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-gff/internal/gff"
)

func buildForest(t *testing.T, content string) *gff.Forest {
	t.Helper()
	r, err := gff.NewReader(strings.NewReader(content))
	require.NoError(t, err)
	f, err := gff.NewBuilder().Build(r)
	require.NoError(t, err)
	return f
}

func TestTabWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	header := buf.String()
	for _, col := range []string{"#Chrom", "Gene", "Transcript", "Exon_rank", "Shared"} {
		assert.Contains(t, header, col)
	}
}

func TestTabWriter_WriteForest(t *testing.T) {
	f := buildForest(t, strings.Join([]string{
		"chr2\tsrc\tgene\t100\t300\t.\t-\t.\tID=G;Name=Foo",
		"chr2\tsrc\tmRNA\t100\t300\t.\t-\t.\tID=TX1;Parent=G",
		"chr2\tsrc\tmRNA\t100\t300\t.\t-\t.\tID=TX2;Parent=G",
		"chr2\tsrc\texon\t100\t110\t.\t-\t.\tID=E1;Parent=TX1,TX2",
		"chr2\tsrc\texon\t200\t210\t.\t-\t.\tID=E2;Parent=TX1",
		"chr2\tsrc\tCDS\t105\t110\t.\t-\t0\tParent=TX1",
	}, "\n"))

	var buf bytes.Buffer
	w := NewTabWriter(&buf)
	require.NoError(t, w.WriteForest(f))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	first := strings.Split(lines[0], "\t")
	assert.Equal(t, []string{"chr2", "G", "Foo", "TX1", "-", "1", "200", "210", "E2", "-", "105", "110"}, first)

	second := strings.Split(lines[1], "\t")
	assert.Equal(t, "E1", second[8])
	assert.Equal(t, "YES", second[9])

	third := strings.Split(lines[2], "\t")
	assert.Equal(t, "TX2", third[3])
	assert.Equal(t, "-", third[10], "TX2 has no CDS")
}
