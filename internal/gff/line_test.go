package gff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFeature(t *testing.T) {
	tests := []struct {
		input    string
		expected FeatureType
	}{
		{"gene", FeatureGene},
		{"pseudogene", FeatureGene},
		{"mRNA", FeatureMRNA},
		{"ncRNA", FeatureMRNA},
		{"transcript", FeatureMRNA},
		{"ncRNA_gene", FeatureMRNA},
		{"exon", FeatureExon},
		{"noncoding_exon", FeatureExon},
		{"five_prime_UTR", FeatureUTR},
		{"3UTR", FeatureUTR},
		{"stop_codon", FeatureStopCodon},
		{"stop_codon_redefined_as_selenocysteine", FeatureStopCodon},
		{"start_codon", FeatureStartCodon},
		{"start_cds", FeatureStartCodon},
		{"CDS", FeatureCDS},
		{"cds", FeatureCDS},
		{"CDS_fragment", FeatureOther},
		{"biological_region", FeatureOther},
		{"chromosome", FeatureOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyFeature(tt.input), "ClassifyFeature(%q)", tt.input)
	}
}

func TestParseLine_Gene(t *testing.T) {
	l := ParseLine("chr1\tEnsembl\tgene\t100\t200\t.\t+\t.\tID=GENE1;Name=Foo")

	require.False(t, l.Malformed)
	assert.Equal(t, "chr1", l.Chrom)
	assert.Equal(t, "Ensembl", l.Source)
	assert.Equal(t, FeatureGene, l.Type)
	assert.Equal(t, uint64(100), l.Start)
	assert.Equal(t, uint64(200), l.End)
	assert.Equal(t, 0.0, l.Score)
	assert.Equal(t, StrandPlus, l.Strand)
	assert.Equal(t, byte('.'), l.Phase)
	assert.Equal(t, "GENE1", l.ID)
	assert.Equal(t, "Foo", l.Name)
	assert.True(t, l.GFF3)
	assert.Empty(t, l.Parents)
	assert.Empty(t, l.Warnings)
}

func TestParseLine_LowercasesChrom(t *testing.T) {
	l := ParseLine("CHR1\tEnsembl\tgene\t100\t200\t.\t+\t.\tID=G")
	assert.Equal(t, "chr1", l.Chrom)
}

func TestParseLine_SwapsCoordinates(t *testing.T) {
	tests := []struct{ start, end string }{
		{"100", "200"},
		{"200", "100"},
		{"150", "150"},
	}
	for _, tt := range tests {
		l := ParseLine("chr1\tsrc\texon\t" + tt.start + "\t" + tt.end + "\t.\t-\t.\tParent=T1")
		require.False(t, l.Malformed)
		assert.LessOrEqual(t, l.Start, l.End)
		assert.Contains(t, []uint64{100, 150}, l.Start)
		assert.Contains(t, []uint64{150, 200}, l.End)
		assert.Empty(t, l.Warnings, "swap is silent")
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"six fields", "chr1\tEnsembl\tgene\t100\t200\t."},
		{"zero start", "chr1\tEnsembl\tgene\t0\t200\t.\t+\t.\tID=G"},
		{"zero end", "chr1\tEnsembl\tgene\t100\t0\t.\t+\t.\tID=G"},
		{"non-numeric start", "chr1\tEnsembl\tgene\tabc\t200\t.\t+\t.\tID=G"},
		{"zero score", "chr1\tEnsembl\tgene\t100\t200\t0\t+\t.\tID=G"},
		{"unparseable score", "chr1\tEnsembl\tgene\t100\t200\tn/a\t+\t.\tID=G"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ParseLine(tt.line)
			assert.True(t, l.Malformed)
			assert.NotEmpty(t, l.Warnings)
			assert.Empty(t, l.ID, "parsing stops before attributes")
		})
	}
}

func TestParseLine_Score(t *testing.T) {
	l := ParseLine("chr1\tEnsembl\tgene\t100\t200\t5.5\t+\t.\tID=G")
	require.False(t, l.Malformed)
	assert.Equal(t, 5.5, l.Score)
}

func TestParseLine_Strand(t *testing.T) {
	tests := []struct {
		col      string
		expected Strand
	}{
		{"+", StrandPlus},
		{"-", StrandMinus},
		{".", StrandUnknown},
		{"?", StrandUnknown},
	}
	for _, tt := range tests {
		l := ParseLine("chr1\tsrc\tgene\t1\t20\t.\t" + tt.col + "\t.\tID=G")
		assert.Equal(t, tt.expected, l.Strand, "strand %q", tt.col)
	}
}

func TestParseLine_EightFields(t *testing.T) {
	l := ParseLine("chr1\tsrc\tgene\t1\t20\t.\t+\t0")
	assert.False(t, l.Malformed)
	assert.False(t, l.GFF3)
	assert.Equal(t, byte('0'), l.Phase)
}

func TestParseLine_NameFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		attrs string
		want  string
	}{
		{"name wins", "ID=G;gene_name=A;Name=B", "B"},
		{"gene_name", "ID=G;gene_name=A;gene=C", "A"},
		{"genename", "ID=G;genename=D", "D"},
		{"gene_sym", "ID=G;gene_sym=E", "E"},
		{"gene", "ID=G;gene=F", "F"},
		{"quoted", `ID "G"; Name "Foo bar"`, "Foo bar"},
		{"quoted with semicolon", `Name "a;b"; ID=G1`, "a;b"},
		{"none", "ID=G;biotype=x", ""},
		{"no id", "Parent=T1;Name=Foo", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ParseLine("chr1\tsrc\tgene\t1\t20\t.\t+\t.\t" + tt.attrs)
			assert.Equal(t, tt.want, l.Name)
		})
	}
}

func TestParseLine_QuotedSemicolonBeforeID(t *testing.T) {
	l := ParseLine("chr1\tsrc\tgene\t1\t20\t.\t+\t.\t" + `Note "x;y"; Name "a;b"; ID=G1`)
	require.False(t, l.Malformed)
	assert.Equal(t, "G1", l.ID)
	assert.Equal(t, "a;b", l.Name)
	assert.True(t, l.GFF3)
	assert.Equal(t, `Note "x;y";  `, l.Attrs)
}

func TestParseLine_Parents(t *testing.T) {
	l := ParseLine("chr1\tsrc\texon\t1\t20\t.\t+\t.\tID=E1;Parent=T1,T2")
	assert.Equal(t, "T1,T2", l.Parent)
	assert.Equal(t, []string{"T1", "T2"}, l.Parents)
	assert.Equal(t, "T1", l.ParentID())
}

func TestParseLine_RemainingAttrs(t *testing.T) {
	l := ParseLine("chr1\tsrc\tgene\t1\t20\t.\t+\t.\tID=G;Name=Foo;biotype=x")
	assert.Equal(t, "biotype=x", l.Attrs)
}

func TestParseLine_EmptyAttributeValue(t *testing.T) {
	l := ParseLine("chr1\tsrc\texon\t1\t20\t.\t+\t.\tID=;Parent=T1")
	assert.False(t, l.Malformed)
	assert.Empty(t, l.ID)
	assert.Equal(t, "T1", l.Parent)
	assert.True(t, l.GFF3)
	require.Len(t, l.Warnings, 1)
	assert.Contains(t, l.Warnings[0], "empty value")
}

func TestParseLine_NoGFF3Keys(t *testing.T) {
	l := ParseLine("chr1\tHAVANA\tgene\t1\t20\t.\t+\t.\tgene_id \"ENSG1\"; gene_name \"KRAS\";")
	assert.False(t, l.Malformed)
	assert.False(t, l.GFF3)
	assert.Empty(t, l.Name, "names are only read for features with an ID")
}
